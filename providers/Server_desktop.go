//go:build !wasm && !wasip1

package providers

import (
	"fmt"

	"github.com/spf13/pflag"
	serv "github.com/tliron/glsp/server"
	"go.uber.org/multierr"
)

func StartServer() (err error) {
	err = Setup(pflag.CommandLine)

	if err != nil {
		return
	}

	defer func() {
		err = multierr.Append(err, StopServer())
	}()

	webSocketPort, err := pflag.CommandLine.GetInt("web-socket")

	if err != nil {
		return
	}

	server := serv.NewServer(CreateRequestHandler(), "familychart", false)

	if webSocketPort > 0 {
		return server.RunWebSocket(fmt.Sprintf("127.0.0.1:%d", webSocketPort))
	}

	return server.RunStdio()
}

//go:build wasm || wasip1

package providers

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

func StartServer() (err error) {
	err = Setup(pflag.CommandLine)

	if err != nil {
		return
	}

	stream := &ReadWriteCloser{
		reader: os.Stdin,
		writer: os.Stdout,
	}

	handler := CreateRequestHandler()

	conn := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(handler.RpcHandle),
	)

	<-conn.DisconnectNotify()

	return multierr.Append(err, StopServer())
}

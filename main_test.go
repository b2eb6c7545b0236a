package main_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/redexp/familychart/layout"
	chart "github.com/redexp/familychart/providers"
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/spf13/pflag"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func connect(t *testing.T) *jsonrpc2.Conn {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	chart.DefineFlags(flags)

	err := flags.Parse([]string{"--autosave", "0s"})

	if err == nil {
		err = chart.Setup(flags)
	}

	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	serverSide, clientSide := net.Pipe()
	handler := chart.CreateRequestHandler()

	server := jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(serverSide, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(handler.RpcHandle),
	)

	client := jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) {
			return nil, nil
		}),
	)

	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
		_ = chart.StopServer()
	})

	var res struct {
		ServerInfo proto.InitializeResultServerInfo `json:"serverInfo"`
	}

	err = client.Call(ctx, "initialize", proto.InitializeParams{}, &res)

	if err != nil {
		t.Fatal(err)
	}

	if res.ServerInfo.Name != "familychart" {
		t.Errorf("server info = %+v", res.ServerInfo)
	}

	return client
}

func TestRpcSession(t *testing.T) {
	client := connect(t)
	ctx := context.Background()

	for i := range 3 {
		var person state.Person

		err := client.Call(ctx, chart.PersonAddMethod, chart.PositionParams{Position: Pos{X: float64(i) * 100}}, &person)

		if err != nil {
			t.Fatal(err)
		}

		if person.Id != i {
			t.Errorf("person id = %d", person.Id)
		}
	}

	for _, rel := range []chart.RelationParams{
		{Kind: chart.SpouseRelation, From: 0, To: 1},
		{Kind: chart.ChildRelation, From: 0, To: 2},
	} {
		var res chart.EditResult

		err := client.Call(ctx, chart.RelationAddMethod, rel, &res)

		if err != nil || !res.Ok {
			t.Fatalf("%s: %v %s", rel.Kind, err, res.Message)
		}
	}

	var lines []layout.Line

	err := client.Call(ctx, chart.ChartLinesMethod, nil, &lines)

	if err != nil {
		t.Fatal(err)
	}

	if len(lines) == 0 {
		t.Error("no lines")
	}

	var data chart.ChartData

	err = client.Call(ctx, chart.ChartGetMethod, nil, &data)

	if err != nil {
		t.Fatal(err)
	}

	if len(data.Persons) != 3 || len(data.Marriages) != 1 || !data.CanUndo {
		t.Errorf("chart = %+v", data)
	}
}

func TestRpcErrors(t *testing.T) {
	client := connect(t)
	ctx := context.Background()

	tests := []struct {
		method string
		params any
		code   int64
	}{
		{"chart/unknown", nil, jsonrpc2.CodeMethodNotFound},
		{chart.RelationAddMethod, "spouse", jsonrpc2.CodeInvalidParams},
	}

	for _, test := range tests {
		var res any

		err := client.Call(ctx, test.method, test.params, &res)

		var rpcErr *jsonrpc2.Error

		if !errors.As(err, &rpcErr) || rpcErr.Code != test.code {
			t.Errorf("%s: err = %v", test.method, err)
		}
	}
}

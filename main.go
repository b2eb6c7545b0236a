package main

import (
	chart "github.com/redexp/familychart/providers"
	"github.com/spf13/pflag"
	_ "github.com/tliron/commonlog/simple"
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	chart.DefineFlags(pflag.CommandLine)
	pflag.Parse()
}

func main() {
	err := chart.StartServer()

	if err != nil {
		panic(err)
	}
}

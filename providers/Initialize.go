package providers

import (
	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/layout"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	session.SetNotify(ctx.Notify)

	options, err := GetClientConfiguration(params.InitializationOptions)

	if err == nil {
		err = ConfigurationChange(ctx, &options)
	}

	if err != nil {
		log.Errorf("initialization options: %s", err)
	}

	res := &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name: "familychart",
		},
		Capabilities: proto.ServerCapabilities{
			Experimental: ServerMethods{
				Requests:      AllMethods,
				Notifications: []string{ChartReloadMethod},
				Locale:        i18n.Locale,
				Style:         session.Style(),
			},
		},
	}

	return res, nil
}

type ServerMethods struct {
	Requests      []string     `json:"requests"`
	Notifications []string     `json:"notifications"`
	Locale        string       `json:"locale"`
	Style         layout.Style `json:"style"`
}

func Initialized(ctx *Ctx, params *proto.InitializedParams) error {
	return nil
}

func Shutdown(ctx *Ctx) error {
	log.Infof("shutdown")

	return session.Close()
}

func SetTrace(ctx *Ctx, params *proto.SetTraceParams) error {
	log.Debugf("SetTrace: %v", params.Value)

	return nil
}

func CancelRequest(ctx *Ctx, params *proto.CancelParams) error {
	log.Debugf("CancelRequest: %v", params.ID)

	return nil
}

package providers

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/layout"
)

func ConfigurationChange(ctx *Ctx, config *ClientConfiguration) (err error) {
	log.Debugf("config/change: %+v", config)

	if config.Locale != "" {
		err = i18n.SetLocale(config.Locale)

		if err != nil {
			return
		}
	}

	if config.Style == nil {
		return
	}

	style := session.Style()
	err = layout.DecodeStyle(config.Style, &style)

	if err == nil {
		session.SetStyle(style)
	}

	return
}

type ClientConfiguration struct {
	Locale string         `json:"locale" mapstructure:"locale"`
	Style  map[string]any `json:"style" mapstructure:"style"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

type ConfigurationHandlers struct {
	Change ConfigChangeFunc
}

func (req *ConfigurationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ConfigChangeMethod:
		validMethod = true

		var params ClientConfiguration
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Change(ctx, &params)
		}
	}

	return
}

const ConfigChangeMethod = "config/change"

type ConfigChangeFunc func(*Ctx, *ClientConfiguration) error

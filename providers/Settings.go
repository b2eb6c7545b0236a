package providers

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Settings is the server startup configuration. It is read from a YAML file
// and then overridden by command line flags.
type Settings struct {
	Locale   string         `yaml:"locale" mapstructure:"locale"`
	History  int            `yaml:"history" mapstructure:"history"`
	Autosave time.Duration  `yaml:"autosave" mapstructure:"autosave"`
	Style    map[string]any `yaml:"style" mapstructure:"style"`
}

func DefaultSettings() Settings {
	return Settings{
		Locale:   "en",
		History:  100,
		Autosave: 2 * time.Second,
	}
}

func LoadSettings(path string, settings *Settings) error {
	data, err := os.ReadFile(path)

	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return ParseSettings(data, settings)
}

func ParseSettings(data []byte, settings *Settings) error {
	var src map[string]any

	err := yaml.Unmarshal(data, &src)

	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     settings,
	})

	if err != nil {
		return err
	}

	err = decoder.Decode(src)

	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

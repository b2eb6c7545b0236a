package providers

import (
	"fmt"
	"io"
	"time"

	"github.com/redexp/familychart/i18n"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	"go.uber.org/multierr"
)

type ReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (r *ReadWriteCloser) Read(b []byte) (int, error) {
	return r.reader.Read(b)
}

func (r *ReadWriteCloser) Write(b []byte) (int, error) {
	return r.writer.Write(b)
}

func (r *ReadWriteCloser) Close() error {
	return multierr.Append(r.reader.Close(), r.writer.Close())
}

func DefineFlags(flags *pflag.FlagSet) {
	flags.Int("web-socket", 0, "Start websocket server on port")
	flags.String("settings", "", "Path to YAML settings file")
	flags.Int("history", DefaultSettings().History, "Number of undo steps")
	flags.Duration("autosave", 2*time.Second, "Save the open chart after edits, 0 disables")
	flags.CountP("verbosity", "v", "Logging verbosity, repeat to increase")
	flags.String("log", "", "Log file path, stderr when empty")
}

// Setup configures logging and creates the session from the command line
// flags and the settings file they point to.
func Setup(flags *pflag.FlagSet) (err error) {
	verbosity, err := flags.GetCount("verbosity")

	if err != nil {
		return
	}

	logPath, err := flags.GetString("log")

	if err != nil {
		return
	}

	if logPath == "" {
		commonlog.Configure(verbosity, nil)
	} else {
		commonlog.Configure(verbosity, &logPath)
	}

	settings := DefaultSettings()
	settingsPath, err := flags.GetString("settings")

	if err != nil {
		return
	}

	if settingsPath != "" {
		err = LoadSettings(settingsPath, &settings)

		if err != nil {
			return
		}
	}

	if flags.Changed("history") {
		settings.History, err = flags.GetInt("history")

		if err != nil {
			return
		}
	}

	if flags.Changed("autosave") {
		settings.Autosave, err = flags.GetDuration("autosave")

		if err != nil {
			return
		}
	}

	if settings.Locale != "" {
		err = i18n.SetLocale(settings.Locale)

		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}

	session, err = NewSession(settings)

	return
}

// StopServer writes pending edits of the open chart.
func StopServer() error {
	if session == nil {
		return nil
	}

	return session.Close()
}

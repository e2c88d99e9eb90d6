package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jaa/synclog/internal/config"
	"github.com/jaa/synclog/internal/engine"
	"github.com/jaa/synclog/internal/logging"
)

func loadConfig(app *AppContext) (config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(config.LoadOptions{
		ExplicitPath: strings.TrimSpace(app.Opts.ConfigPath),
		WorkingDir:   wd,
	})
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildCodeMap(cfg config.Config) logging.CodeMap {
	overrides := logging.CodeMap{
		Errors:          map[engine.ErrorCode]string{},
		DeletionReasons: map[engine.DeletionReason]string{},
	}
	for code, label := range cfg.Codes.Errors {
		overrides.Errors[engine.ErrorCode(code)] = label
	}
	for reason, label := range cfg.Codes.DeletionReasons {
		overrides.DeletionReasons[engine.DeletionReason(reason)] = label
	}
	return logging.DefaultCodeMap().Merge(overrides)
}

// buildLogger assembles the sink stack for the requested format. Both
// formats go through the fan-out so extra sinks can join without
// touching call sites.
func buildLogger(app *AppContext, cfg config.Config) logging.Logger {
	format := cfg.Defaults.Format
	if app.Opts.JSON {
		format = config.FormatJSON
	}

	switch format {
	case config.FormatJSON:
		return logging.NewMultiLogger(
			logging.NewPlatformAdapter(app.IO.Out, cfg.Defaults.Subsystem, cfg.Defaults.Category),
		)
	default:
		return logging.NewMultiLogger(
			logging.NewConsoleAdapter(app.IO.Out, app.IO.ErrOut, logging.ConsoleOptions{
				Quiet:   app.Opts.Quiet,
				Verbose: app.Opts.Verbose,
				Color:   colorEnabled(app),
			}),
		)
	}
}

func colorEnabled(app *AppContext) bool {
	if app.Opts.NoColor {
		return false
	}
	out, ok := app.IO.Out.(*os.File)
	if !ok {
		return false
	}
	return isTTY(out)
}

func isTTY(file *os.File) bool {
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

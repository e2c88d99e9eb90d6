package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jaa/synclog/internal/config"
	"github.com/jaa/synclog/internal/engine"
	"github.com/jaa/synclog/internal/exitcode"
	"github.com/jaa/synclog/internal/logging"
	"github.com/spf13/cobra"
)

func newReplayCommand(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <capture-file|->",
		Short: "Replay a recorded sync-event capture through the logging pipeline",
		Long:  "replay reads newline-delimited JSON sync-engine events from a capture file (or stdin with \"-\"), translates each one into the structured log model, and broadcasts it to the configured sinks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return withExitCode(exitcode.InvalidConfig, err)
			}
			if err := config.Validate(cfg); err != nil {
				return withExitCode(exitcode.InvalidConfig, err)
			}

			scope := cfg.Defaults.Scope
			if override := strings.TrimSpace(app.Opts.Scope); override != "" {
				scope = override
			}

			var in io.Reader
			if args[0] == "-" {
				in = app.IO.In
			} else {
				file, openErr := os.Open(args[0])
				if openErr != nil {
					return withExitCode(exitcode.RuntimeFailure, fmt.Errorf("open capture file: %w", openErr))
				}
				defer file.Close()
				in = file
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals()...)
			defer stop()

			codes := buildCodeMap(cfg)
			sink := buildLogger(app, cfg)

			replayed := 0
			malformed := 0
			streamErr := engine.DecodeStream(ctx, in, func(ev engine.Event) {
				sink.Log(logging.ToEventData(ev, scope, codes))
				replayed++
			}, func(line int, decodeErr error) {
				malformed++
				sink.Warning(fmt.Sprintf("skipping malformed event at line %d: %v", line, decodeErr))
			})

			sink.Debug(fmt.Sprintf("replayed %d events (%d malformed lines skipped)", replayed, malformed))

			if streamErr != nil {
				if errors.Is(streamErr, context.Canceled) {
					return withExitCode(exitcode.Interrupted, fmt.Errorf("replay interrupted"))
				}
				return withExitCode(exitcode.RuntimeFailure, streamErr)
			}
			if malformed > 0 {
				return withExitCode(exitcode.PartialSuccess, fmt.Errorf("%d malformed lines skipped", malformed))
			}
			return nil
		},
	}
}

package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// PlatformAdapter routes log calls to a zerolog channel. Structured
// events are rendered through FormatDetails and emitted at debug with
// the scope and event type as fields; free-text calls go to the
// matching severity. zerolog serializes writes, so the adapter is safe
// for concurrent callers.
type PlatformAdapter struct {
	logger zerolog.Logger
}

// NewPlatformAdapter builds an adapter writing to w, tagging every line
// with the given subsystem and category labels.
func NewPlatformAdapter(w io.Writer, subsystem, category string) *PlatformAdapter {
	logger := zerolog.New(w).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("subsystem", subsystem).
		Str("category", category).
		Logger()
	return &PlatformAdapter{logger: logger}
}

// NewPlatformAdapterWithLogger wraps an injected log channel.
func NewPlatformAdapterWithLogger(logger zerolog.Logger) *PlatformAdapter {
	return &PlatformAdapter{logger: logger}
}

// NewDiscardAdapter returns an adapter whose output is fully
// suppressed. Useful in tests that need a Logger but no output.
func NewDiscardAdapter() *PlatformAdapter {
	return &PlatformAdapter{logger: zerolog.Nop()}
}

func (a *PlatformAdapter) Log(data EventData) {
	a.logger.Debug().
		Str("scope", data.DatabaseScope).
		Str("event", data.EventType).
		Msg(FormatDetails(data))
}

func (a *PlatformAdapter) Debug(message string) {
	a.logger.Debug().Msg(message)
}

func (a *PlatformAdapter) Trace(message string) {
	a.logger.Trace().Msg(message)
}

func (a *PlatformAdapter) Warning(message string) {
	a.logger.Warn().Msg(message)
}

func (a *PlatformAdapter) Error(message string) {
	a.logger.Error().Msg(message)
}

package logging

// Logger is the capability every log sink implements. All operations
// are side-effecting and never fail from the caller's perspective: a
// logging problem must not interrupt the sync pipeline that reports it.
// Implementations are responsible for their own safety under concurrent
// callers.
type Logger interface {
	// Log emits one structured sync event.
	Log(data EventData)

	Debug(message string)
	Trace(message string)
	Warning(message string)
	Error(message string)
}

// MultiLogger broadcasts every call to a fixed, ordered list of sinks.
// It adds no concurrency and no error handling of its own: each call
// runs sequentially on the caller, in construction order. An empty
// MultiLogger is a valid no-op sink.
type MultiLogger struct {
	sinks []Logger
}

func NewMultiLogger(sinks ...Logger) *MultiLogger {
	captured := make([]Logger, len(sinks))
	copy(captured, sinks)
	return &MultiLogger{sinks: captured}
}

func (m *MultiLogger) Log(data EventData) {
	for _, sink := range m.sinks {
		sink.Log(data)
	}
}

func (m *MultiLogger) Debug(message string) {
	for _, sink := range m.sinks {
		sink.Debug(message)
	}
}

func (m *MultiLogger) Trace(message string) {
	for _, sink := range m.sinks {
		sink.Trace(message)
	}
}

func (m *MultiLogger) Warning(message string) {
	for _, sink := range m.sinks {
		sink.Warning(message)
	}
}

func (m *MultiLogger) Error(message string) {
	for _, sink := range m.sinks {
		sink.Error(message)
	}
}

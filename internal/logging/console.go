package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type ConsoleOptions struct {
	Quiet   bool
	Verbose bool
	Color   bool
}

// ConsoleAdapter is the human-facing sink: structured events print as a
// scope-tagged headline plus the formatted body on stdout, warnings and
// errors go to stderr with a severity prefix. Quiet drops debug
// chatter; trace needs verbose. Writes are mutex-guarded so the adapter
// is safe for concurrent callers.
type ConsoleAdapter struct {
	mu      sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool

	tracePrefix string
	debugPrefix string
	warnPrefix  string
	errorPrefix string
}

func NewConsoleAdapter(stdout, stderr io.Writer, opts ConsoleOptions) *ConsoleAdapter {
	adapter := &ConsoleAdapter{
		stdout:      stdout,
		stderr:      stderr,
		quiet:       opts.Quiet,
		verbose:     opts.Verbose,
		tracePrefix: "TRACE:",
		debugPrefix: "DEBUG:",
		warnPrefix:  "WARN:",
		errorPrefix: "ERROR:",
	}
	if opts.Color {
		adapter.tracePrefix = lipgloss.NewStyle().Faint(true).Render(adapter.tracePrefix)
		adapter.debugPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render(adapter.debugPrefix)
		adapter.warnPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(adapter.warnPrefix)
		adapter.errorPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render(adapter.errorPrefix)
	}
	return adapter
}

func (a *ConsoleAdapter) Log(data EventData) {
	if a.quiet {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.stdout, "[%s] %s\n%s\n", data.DatabaseScope, data.EventType, FormatDetails(data))
}

func (a *ConsoleAdapter) Debug(message string) {
	if a.quiet {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.stdout, a.debugPrefix, message)
}

func (a *ConsoleAdapter) Trace(message string) {
	if a.quiet || !a.verbose {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.stdout, a.tracePrefix, message)
}

func (a *ConsoleAdapter) Warning(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.stderr, a.warnPrefix, message)
}

func (a *ConsoleAdapter) Error(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.stderr, a.errorPrefix, message)
}

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newTestConsole(opts ConsoleOptions) (*ConsoleAdapter, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return NewConsoleAdapter(stdout, stderr, opts), stdout, stderr
}

func TestConsoleAdapterRoutesSeverities(t *testing.T) {
	adapter, stdout, stderr := newTestConsole(ConsoleOptions{Verbose: true})

	adapter.Trace("t")
	adapter.Debug("d")
	adapter.Warning("w")
	adapter.Error("e")

	out := stdout.String()
	if !strings.Contains(out, "TRACE: t") || !strings.Contains(out, "DEBUG: d") {
		t.Fatalf("stdout missing trace/debug lines: %q", out)
	}

	errOut := stderr.String()
	if !strings.Contains(errOut, "WARN: w") || !strings.Contains(errOut, "ERROR: e") {
		t.Fatalf("stderr missing warn/error lines: %q", errOut)
	}
	if strings.Contains(errOut, "TRACE") || strings.Contains(errOut, "DEBUG") {
		t.Fatalf("trace/debug leaked to stderr: %q", errOut)
	}
}

func TestConsoleAdapterEventOutput(t *testing.T) {
	adapter, stdout, _ := newTestConsole(ConsoleOptions{})

	adapter.Log(EventData{
		DatabaseScope: "shared",
		EventType:     EventTypeDidFetchChanges,
		Details:       Details{DidFetchChanges: &DidFetchChangesDetails{}},
	})

	out := stdout.String()
	if !strings.Contains(out, "[shared] didFetchChanges") {
		t.Fatalf("expected scope-tagged headline in %q", out)
	}
	if !strings.Contains(out, "Did fetch changes") {
		t.Fatalf("expected formatted body in %q", out)
	}
}

func TestConsoleAdapterQuietSuppressesChatter(t *testing.T) {
	adapter, stdout, stderr := newTestConsole(ConsoleOptions{Quiet: true, Verbose: true})

	adapter.Log(EventData{EventType: EventTypeStateUpdate, Details: Details{StateUpdate: &StateUpdateDetails{}}})
	adapter.Debug("d")
	adapter.Trace("t")
	adapter.Warning("w")

	if stdout.Len() != 0 {
		t.Fatalf("quiet mode wrote to stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "WARN: w") {
		t.Fatalf("quiet mode must keep warnings, got %q", stderr.String())
	}
}

func TestConsoleAdapterTraceRequiresVerbose(t *testing.T) {
	adapter, stdout, _ := newTestConsole(ConsoleOptions{})

	adapter.Trace("t")
	if stdout.Len() != 0 {
		t.Fatalf("trace without verbose wrote %q", stdout.String())
	}
}

package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

var knownKinds = map[EventKind]struct{}{
	KindStateUpdate:                {},
	KindAccountChange:              {},
	KindFetchedDatabaseChanges:     {},
	KindSentDatabaseChanges:        {},
	KindFetchedRecordZoneChanges:   {},
	KindSentRecordZoneChanges:      {},
	KindWillFetchChanges:           {},
	KindDidFetchChanges:            {},
	KindWillFetchRecordZoneChanges: {},
	KindDidFetchRecordZoneChanges:  {},
	KindWillSendChanges:            {},
	KindDidSendChanges:             {},
	KindUnknown:                    {},
}

// UnmarshalJSON decodes one recorded event. A kind string this
// vocabulary does not recognize decodes to KindUnknown with no
// payload, so captures from newer engines keep replaying.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if strings.TrimSpace(string(decoded.Kind)) == "" {
		return fmt.Errorf("event has no kind")
	}
	if _, ok := knownKinds[decoded.Kind]; !ok {
		*e = Event{Kind: KindUnknown}
		return nil
	}
	*e = Event(decoded)
	return nil
}

// DecodeStream reads newline-delimited JSON events from r. Each decoded
// event is passed to handle; each malformed line is passed to onErr with
// its 1-based line number and decoding continues. Blank lines are
// skipped. The returned error reports read failures or context
// cancellation, never decode problems.
func DecodeStream(ctx context.Context, r io.Reader, handle func(Event), onErr func(line int, err error)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var event Event
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			if onErr != nil {
				onErr(lineNo, err)
			}
			continue
		}
		handle(event)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return nil
}

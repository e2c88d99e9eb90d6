package engine

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		Kind: KindFetchedDatabaseChanges,
		FetchedDatabaseChanges: &FetchedDatabaseChangesEvent{
			Modifications: []ZoneID{{ZoneName: "notes", OwnerName: "owner"}},
			Deletions: []ZoneDeletion{
				{ZoneID: ZoneID{ZoneName: "tasks", OwnerName: "owner"}, Reason: DeletionReasonPurged},
			},
		},
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(event, decoded) {
		t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", event, decoded)
	}
}

func TestUnmarshalUnknownKindDegrades(t *testing.T) {
	raw := `{"kind":"someFutureEvent","someFutureEvent":{"anything":1}}`

	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Kind != KindUnknown {
		t.Fatalf("Kind = %q, want %q", event.Kind, KindUnknown)
	}
	if event.StateUpdate != nil || event.FetchedDatabaseChanges != nil {
		t.Fatalf("unexpected payload on unknown event: %+v", event)
	}
}

func TestUnmarshalMissingKindFails(t *testing.T) {
	var event Event
	if err := json.Unmarshal([]byte(`{"stateUpdate":{}}`), &event); err == nil {
		t.Fatalf("expected error for event without kind")
	}
}

func TestDecodeStreamSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"kind":"willSendChanges","willSendChanges":{"reason":"scheduled"}}`,
		``,
		`not json`,
		`{"kind":"didSendChanges","didSendChanges":{}}`,
	}, "\n")

	var events []Event
	var badLines []int
	err := DecodeStream(context.Background(), strings.NewReader(input), func(ev Event) {
		events = append(events, ev)
	}, func(line int, _ error) {
		badLines = append(badLines, line)
	})
	if err != nil {
		t.Fatalf("decode stream: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindWillSendChanges || events[1].Kind != KindDidSendChanges {
		t.Fatalf("unexpected kinds: %q, %q", events[0].Kind, events[1].Kind)
	}
	if events[0].WillSendChanges == nil || events[0].WillSendChanges.Reason != SyncReasonScheduled {
		t.Fatalf("unexpected willSendChanges payload: %+v", events[0].WillSendChanges)
	}
	if !reflect.DeepEqual(badLines, []int{3}) {
		t.Fatalf("bad lines = %v, want [3]", badLines)
	}
}

func TestDecodeStreamHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handled := 0
	err := DecodeStream(ctx, strings.NewReader(`{"kind":"didSendChanges"}`), func(Event) {
		handled++
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if handled != 0 {
		t.Fatalf("handled %d events after cancellation", handled)
	}
}

package logging

import (
	"reflect"
	"testing"

	"github.com/jaa/synclog/internal/engine"
)

func TestToEventDataEventTypes(t *testing.T) {
	tests := []struct {
		name  string
		event engine.Event
		want  string
	}{
		{name: "state update", event: engine.Event{Kind: engine.KindStateUpdate, StateUpdate: &engine.StateUpdateEvent{}}, want: EventTypeStateUpdate},
		{name: "account change", event: engine.Event{Kind: engine.KindAccountChange, AccountChange: &engine.AccountChangeEvent{ChangeType: engine.AccountSignIn}}, want: EventTypeAccountChange},
		{name: "fetched database changes", event: engine.Event{Kind: engine.KindFetchedDatabaseChanges, FetchedDatabaseChanges: &engine.FetchedDatabaseChangesEvent{}}, want: EventTypeFetchedDatabaseChanges},
		{name: "sent database changes", event: engine.Event{Kind: engine.KindSentDatabaseChanges, SentDatabaseChanges: &engine.SentDatabaseChangesEvent{}}, want: EventTypeSentDatabaseChanges},
		{name: "fetched record zone changes", event: engine.Event{Kind: engine.KindFetchedRecordZoneChanges, FetchedRecordZoneChanges: &engine.FetchedRecordZoneChangesEvent{}}, want: EventTypeFetchedRecordZoneChanges},
		{name: "sent record zone changes", event: engine.Event{Kind: engine.KindSentRecordZoneChanges, SentRecordZoneChanges: &engine.SentRecordZoneChangesEvent{}}, want: EventTypeSentRecordZoneChanges},
		{name: "will fetch changes", event: engine.Event{Kind: engine.KindWillFetchChanges, WillFetchChanges: &engine.WillFetchChangesEvent{Reason: engine.SyncReasonScheduled}}, want: EventTypeWillFetchChanges},
		{name: "did fetch changes", event: engine.Event{Kind: engine.KindDidFetchChanges, DidFetchChanges: &engine.DidFetchChangesEvent{}}, want: EventTypeDidFetchChanges},
		{name: "will fetch record zone changes", event: engine.Event{Kind: engine.KindWillFetchRecordZoneChanges, WillFetchRecordZoneChanges: &engine.WillFetchRecordZoneChangesEvent{}}, want: EventTypeWillFetchRecordZoneChanges},
		{name: "did fetch record zone changes", event: engine.Event{Kind: engine.KindDidFetchRecordZoneChanges, DidFetchRecordZoneChanges: &engine.DidFetchRecordZoneChangesEvent{}}, want: EventTypeDidFetchRecordZoneChanges},
		{name: "will send changes", event: engine.Event{Kind: engine.KindWillSendChanges, WillSendChanges: &engine.WillSendChangesEvent{Reason: engine.SyncReasonManual}}, want: EventTypeWillSendChanges},
		{name: "did send changes", event: engine.Event{Kind: engine.KindDidSendChanges, DidSendChanges: &engine.DidSendChangesEvent{}}, want: EventTypeDidSendChanges},
		{name: "unknown kind", event: engine.Event{Kind: engine.KindUnknown}, want: EventTypeUnknown},
		{name: "future kind", event: engine.Event{Kind: engine.EventKind("someFutureEvent")}, want: EventTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := ToEventData(tc.event, "private", DefaultCodeMap())
			if data.EventType != tc.want {
				t.Fatalf("EventType = %q, want %q", data.EventType, tc.want)
			}
			if data.DatabaseScope != "private" {
				t.Fatalf("DatabaseScope = %q, want %q", data.DatabaseScope, "private")
			}
		})
	}
}

func TestToEventDataGroupsRecordChangesByType(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindFetchedRecordZoneChanges,
		FetchedRecordZoneChanges: &engine.FetchedRecordZoneChangesEvent{
			Modifications: []engine.RecordChange{
				{RecordID: engine.RecordID{RecordName: "r1"}, RecordType: "A"},
				{RecordID: engine.RecordID{RecordName: "r2"}, RecordType: "A"},
				{RecordID: engine.RecordID{RecordName: "r3"}, RecordType: "B"},
			},
		},
	}

	data := ToEventData(event, "private", DefaultCodeMap())
	details := data.Details.FetchedRecordZoneChanges
	if details == nil {
		t.Fatalf("expected fetchedRecordZoneChanges details, got %+v", data.Details)
	}

	wantModified := map[string]int{"A": 2, "B": 1}
	if !reflect.DeepEqual(details.Modified, wantModified) {
		t.Fatalf("Modified = %v, want %v", details.Modified, wantModified)
	}
	if len(details.Deleted) != 0 {
		t.Fatalf("Deleted = %v, want empty", details.Deleted)
	}
}

func TestToEventDataGroupsDeletedRecordsByZone(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindSentRecordZoneChanges,
		SentRecordZoneChanges: &engine.SentRecordZoneChangesEvent{
			DeletedRecordIDs: []engine.RecordID{
				{RecordName: "r1", Zone: engine.ZoneID{ZoneName: "notes", OwnerName: "owner"}},
				{RecordName: "r2", Zone: engine.ZoneID{ZoneName: "notes", OwnerName: "owner"}},
				{RecordName: "r3", Zone: engine.ZoneID{ZoneName: "tasks", OwnerName: "owner"}},
			},
		},
	}

	data := ToEventData(event, "private", DefaultCodeMap())
	details := data.Details.SentRecordZoneChanges
	if details == nil {
		t.Fatalf("expected sentRecordZoneChanges details, got %+v", data.Details)
	}

	want := map[string]int{"notes:owner": 2, "tasks:owner": 1}
	if !reflect.DeepEqual(details.DeletedByZone, want) {
		t.Fatalf("DeletedByZone = %v, want %v", details.DeletedByZone, want)
	}
}

func TestToEventDataTranslatesAccountChange(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindAccountChange,
		AccountChange: &engine.AccountChangeEvent{
			ChangeType: engine.AccountSwitchAccounts,
			Previous:   &engine.UserID{UserRecordName: "u1", ZoneName: "z", OwnerName: "o"},
			Current:    &engine.UserID{UserRecordName: "u2", ZoneName: "z", OwnerName: "o"},
		},
	}

	data := ToEventData(event, "private", DefaultCodeMap())
	details := data.Details.AccountChange
	if details == nil {
		t.Fatalf("expected accountChange details, got %+v", data.Details)
	}
	if details.ChangeType != "switchAccounts" {
		t.Fatalf("ChangeType = %q, want %q", details.ChangeType, "switchAccounts")
	}
	if details.Previous == nil || details.Previous.UserID != "u1" {
		t.Fatalf("Previous = %+v, want user u1", details.Previous)
	}
	if details.Current == nil || details.Current.UserID != "u2" {
		t.Fatalf("Current = %+v, want user u2", details.Current)
	}

	unrecognized := engine.Event{
		Kind:          engine.KindAccountChange,
		AccountChange: &engine.AccountChangeEvent{ChangeType: engine.AccountChangeKind("somethingNew")},
	}
	if got := ToEventData(unrecognized, "private", DefaultCodeMap()).Details.AccountChange.ChangeType; got != "unknown" {
		t.Fatalf("unrecognized change type = %q, want %q", got, "unknown")
	}
}

func TestToEventDataMapsCodesThroughCodeMap(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindSentDatabaseChanges,
		SentDatabaseChanges: &engine.SentDatabaseChangesEvent{
			FailedZoneSaves: []engine.ZoneFailure{
				{ZoneID: engine.ZoneID{ZoneName: "a", OwnerName: "o"}, Code: engine.ErrNetworkFailure},
				{ZoneID: engine.ZoneID{ZoneName: "b", OwnerName: "o"}, Code: engine.ErrorCode("someFutureCode")},
			},
		},
	}

	data := ToEventData(event, "private", DefaultCodeMap())
	failures := data.Details.SentDatabaseChanges.FailedSaves
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures[0].Reason != "network failure" {
		t.Fatalf("known code reason = %q, want %q", failures[0].Reason, "network failure")
	}
	if failures[1].Reason != "unknown" {
		t.Fatalf("future code reason = %q, want %q", failures[1].Reason, "unknown")
	}
}

func TestToEventDataMapsDeletionReasons(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindFetchedDatabaseChanges,
		FetchedDatabaseChanges: &engine.FetchedDatabaseChangesEvent{
			Deletions: []engine.ZoneDeletion{
				{ZoneID: engine.ZoneID{ZoneName: "a", OwnerName: "o"}, Reason: engine.DeletionReasonPurged},
				{ZoneID: engine.ZoneID{ZoneName: "b", OwnerName: "o"}, Reason: engine.DeletionReason("someFutureReason")},
			},
		},
	}

	data := ToEventData(event, "shared", DefaultCodeMap())
	deletions := data.Details.FetchedDatabaseChanges.Deleted
	if len(deletions) != 2 {
		t.Fatalf("expected 2 deletions, got %d", len(deletions))
	}
	if deletions[0].Reason != "purged" {
		t.Fatalf("known reason = %q, want %q", deletions[0].Reason, "purged")
	}
	if deletions[1].Reason != "unknown" {
		t.Fatalf("future reason = %q, want %q", deletions[1].Reason, "unknown")
	}
}

func TestToEventDataIsPure(t *testing.T) {
	event := engine.Event{
		Kind: engine.KindSentRecordZoneChanges,
		SentRecordZoneChanges: &engine.SentRecordZoneChangesEvent{
			SavedRecords: []engine.RecordChange{
				{RecordID: engine.RecordID{RecordName: "r1"}, RecordType: "note"},
			},
			FailedRecordSaves: []engine.RecordFailure{
				{RecordID: engine.RecordID{RecordName: "r2"}, RecordType: "task", Code: engine.ErrQuotaExceeded},
			},
		},
	}

	first := ToEventData(event, "private", DefaultCodeMap())
	second := ToEventData(event, "private", DefaultCodeMap())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("translation is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestToEventDataMissingPayloadDegrades(t *testing.T) {
	data := ToEventData(engine.Event{Kind: engine.KindSentDatabaseChanges}, "private", DefaultCodeMap())
	if data.EventType != EventTypeSentDatabaseChanges {
		t.Fatalf("EventType = %q, want %q", data.EventType, EventTypeSentDatabaseChanges)
	}
	details := data.Details.SentDatabaseChanges
	if details == nil {
		t.Fatalf("expected empty sentDatabaseChanges details, got %+v", data.Details)
	}
	if len(details.Saved) != 0 || len(details.FailedSaves) != 0 {
		t.Fatalf("expected empty details, got %+v", details)
	}
}

func TestCodeMapMergeLayersOverrides(t *testing.T) {
	merged := DefaultCodeMap().Merge(CodeMap{
		Errors: map[engine.ErrorCode]string{
			engine.ErrNetworkFailure:         "offline",
			engine.ErrorCode("newEngineErr"): "new engine error",
		},
	})

	if got := merged.errorLabel(engine.ErrNetworkFailure); got != "offline" {
		t.Fatalf("override label = %q, want %q", got, "offline")
	}
	if got := merged.errorLabel(engine.ErrorCode("newEngineErr")); got != "new engine error" {
		t.Fatalf("added label = %q, want %q", got, "new engine error")
	}
	if got := merged.errorLabel(engine.ErrQuotaExceeded); got != "quota exceeded" {
		t.Fatalf("default label = %q, want %q", got, "quota exceeded")
	}
	if got := DefaultCodeMap().errorLabel(engine.ErrNetworkFailure); got != "network failure" {
		t.Fatalf("Merge mutated the default table: %q", got)
	}
}

func TestZeroCodeMapRendersUnknown(t *testing.T) {
	var codes CodeMap
	if got := codes.errorLabel(engine.ErrNetworkFailure); got != "unknown" {
		t.Fatalf("zero-value error label = %q, want %q", got, "unknown")
	}
	if got := codes.deletionReasonLabel(engine.DeletionReasonPurged); got != "unknown" {
		t.Fatalf("zero-value reason label = %q, want %q", got, "unknown")
	}
}

package logging

import "github.com/jaa/synclog/internal/engine"

// ToEventData converts one sync-engine event into the structured log
// model. It is pure and total: every event kind, including kinds this
// layer has never seen and payloads that are missing, produces exactly
// one EventData. Unrecognized kinds map to EventTypeUnknown with empty
// details.
func ToEventData(ev engine.Event, scope string, codes CodeMap) EventData {
	data := EventData{DatabaseScope: scope}

	switch ev.Kind {
	case engine.KindStateUpdate:
		data.EventType = EventTypeStateUpdate
		data.Details.StateUpdate = &StateUpdateDetails{}

	case engine.KindAccountChange:
		data.EventType = EventTypeAccountChange
		details := &AccountChangeDetails{ChangeType: string(engine.AccountUnknown)}
		if ev.AccountChange != nil {
			details.ChangeType = accountChangeLabel(ev.AccountChange.ChangeType)
			details.Previous = accountOf(ev.AccountChange.Previous)
			details.Current = accountOf(ev.AccountChange.Current)
		}
		data.Details.AccountChange = details

	case engine.KindFetchedDatabaseChanges:
		data.EventType = EventTypeFetchedDatabaseChanges
		details := &FetchedDatabaseChangesDetails{}
		if ev.FetchedDatabaseChanges != nil {
			details.Modified = zonesOf(ev.FetchedDatabaseChanges.Modifications)
			details.Deleted = zoneDeletionsOf(ev.FetchedDatabaseChanges.Deletions, codes)
		}
		data.Details.FetchedDatabaseChanges = details

	case engine.KindSentDatabaseChanges:
		data.EventType = EventTypeSentDatabaseChanges
		details := &SentDatabaseChangesDetails{}
		if ev.SentDatabaseChanges != nil {
			details.Saved = zonesOf(ev.SentDatabaseChanges.SavedZones)
			details.FailedSaves = zoneFailuresOf(ev.SentDatabaseChanges.FailedZoneSaves, codes)
			details.Deleted = zonesOf(ev.SentDatabaseChanges.DeletedZoneIDs)
			details.FailedDeletes = zoneFailuresOf(ev.SentDatabaseChanges.FailedZoneDeletes, codes)
		}
		data.Details.SentDatabaseChanges = details

	case engine.KindFetchedRecordZoneChanges:
		data.EventType = EventTypeFetchedRecordZoneChanges
		details := &FetchedRecordZoneChangesDetails{}
		if ev.FetchedRecordZoneChanges != nil {
			details.Modified = countByRecordType(ev.FetchedRecordZoneChanges.Modifications)
			details.Deleted = countByRecordType(ev.FetchedRecordZoneChanges.Deletions)
		}
		data.Details.FetchedRecordZoneChanges = details

	case engine.KindSentRecordZoneChanges:
		data.EventType = EventTypeSentRecordZoneChanges
		details := &SentRecordZoneChangesDetails{}
		if ev.SentRecordZoneChanges != nil {
			details.Saved = countByRecordType(ev.SentRecordZoneChanges.SavedRecords)
			details.FailedSaves = countFailuresByRecordType(ev.SentRecordZoneChanges.FailedRecordSaves)
			details.DeletedByZone = countByZone(ev.SentRecordZoneChanges.DeletedRecordIDs)
			details.FailedDeletes = countFailuresByZone(ev.SentRecordZoneChanges.FailedRecordDeletes)
		}
		data.Details.SentRecordZoneChanges = details

	case engine.KindWillFetchChanges:
		data.EventType = EventTypeWillFetchChanges
		details := &WillFetchChangesDetails{Reason: unknownLabel}
		if ev.WillFetchChanges != nil {
			details.Reason = syncReasonLabel(ev.WillFetchChanges.Reason)
		}
		data.Details.WillFetchChanges = details

	case engine.KindDidFetchChanges:
		data.EventType = EventTypeDidFetchChanges
		data.Details.DidFetchChanges = &DidFetchChangesDetails{}

	case engine.KindWillFetchRecordZoneChanges:
		data.EventType = EventTypeWillFetchRecordZoneChanges
		details := &WillFetchRecordZoneChangesDetails{}
		if ev.WillFetchRecordZoneChanges != nil {
			details.Zone = zoneOf(ev.WillFetchRecordZoneChanges.ZoneID)
		}
		data.Details.WillFetchRecordZoneChanges = details

	case engine.KindDidFetchRecordZoneChanges:
		data.EventType = EventTypeDidFetchRecordZoneChanges
		details := &DidFetchRecordZoneChangesDetails{}
		if ev.DidFetchRecordZoneChanges != nil {
			details.Zone = zoneOf(ev.DidFetchRecordZoneChanges.ZoneID)
		}
		data.Details.DidFetchRecordZoneChanges = details

	case engine.KindWillSendChanges:
		data.EventType = EventTypeWillSendChanges
		details := &WillSendChangesDetails{Reason: unknownLabel}
		if ev.WillSendChanges != nil {
			details.Reason = syncReasonLabel(ev.WillSendChanges.Reason)
		}
		data.Details.WillSendChanges = details

	case engine.KindDidSendChanges:
		data.EventType = EventTypeDidSendChanges
		data.Details.DidSendChanges = &DidSendChangesDetails{}

	default:
		data.EventType = EventTypeUnknown
		data.Details.StateUpdate = &StateUpdateDetails{}
	}

	return data
}

func zoneOf(id engine.ZoneID) Zone {
	return Zone{ZoneName: id.ZoneName, OwnerName: id.OwnerName}
}

func zonesOf(ids []engine.ZoneID) []Zone {
	if len(ids) == 0 {
		return nil
	}
	zones := make([]Zone, 0, len(ids))
	for _, id := range ids {
		zones = append(zones, zoneOf(id))
	}
	return zones
}

func zoneDeletionsOf(deletions []engine.ZoneDeletion, codes CodeMap) []ZoneDeletion {
	if len(deletions) == 0 {
		return nil
	}
	result := make([]ZoneDeletion, 0, len(deletions))
	for _, d := range deletions {
		result = append(result, ZoneDeletion{
			Zone:   zoneOf(d.ZoneID),
			Reason: codes.deletionReasonLabel(d.Reason),
		})
	}
	return result
}

func zoneFailuresOf(failures []engine.ZoneFailure, codes CodeMap) []ZoneFailure {
	if len(failures) == 0 {
		return nil
	}
	result := make([]ZoneFailure, 0, len(failures))
	for _, f := range failures {
		result = append(result, ZoneFailure{
			Zone:   zoneOf(f.ZoneID),
			Reason: codes.errorLabel(f.Code),
		})
	}
	return result
}

// countByRecordType collapses a change list into occurrence counts per
// record type, discarding per-record identity.
func countByRecordType(changes []engine.RecordChange) map[string]int {
	counts := map[string]int{}
	for _, change := range changes {
		counts[recordTypeKey(change.RecordType)]++
	}
	return counts
}

func countFailuresByRecordType(failures []engine.RecordFailure) map[string]int {
	counts := map[string]int{}
	for _, failure := range failures {
		counts[recordTypeKey(failure.RecordType)]++
	}
	return counts
}

func countByZone(ids []engine.RecordID) map[string]int {
	counts := map[string]int{}
	for _, id := range ids {
		counts[zoneOf(id.Zone).DisplayName()]++
	}
	return counts
}

func countFailuresByZone(failures []engine.RecordFailure) map[string]int {
	counts := map[string]int{}
	for _, failure := range failures {
		counts[zoneOf(failure.RecordID.Zone).DisplayName()]++
	}
	return counts
}

func recordTypeKey(recordType string) string {
	if recordType == "" {
		return unknownLabel
	}
	return recordType
}

func accountOf(id *engine.UserID) *Account {
	if id == nil {
		return nil
	}
	return &Account{
		UserID:    id.UserRecordName,
		ZoneName:  id.ZoneName,
		OwnerName: id.OwnerName,
	}
}

func accountChangeLabel(kind engine.AccountChangeKind) string {
	switch kind {
	case engine.AccountSignIn, engine.AccountSignOut, engine.AccountSwitchAccounts:
		return string(kind)
	default:
		return unknownLabel
	}
}

func syncReasonLabel(reason engine.SyncReason) string {
	switch reason {
	case engine.SyncReasonScheduled, engine.SyncReasonManual:
		return string(reason)
	default:
		return unknownLabel
	}
}

package logging

// Event type discriminators. Each translated sync-engine event carries
// exactly one of these in EventData.EventType.
const (
	EventTypeStateUpdate                = "stateUpdate"
	EventTypeAccountChange              = "accountChange"
	EventTypeFetchedDatabaseChanges     = "fetchedDatabaseChanges"
	EventTypeSentDatabaseChanges        = "sentDatabaseChanges"
	EventTypeFetchedRecordZoneChanges   = "fetchedRecordZoneChanges"
	EventTypeSentRecordZoneChanges      = "sentRecordZoneChanges"
	EventTypeWillFetchChanges           = "willFetchChanges"
	EventTypeDidFetchChanges            = "didFetchChanges"
	EventTypeWillFetchRecordZoneChanges = "willFetchRecordZoneChanges"
	EventTypeDidFetchRecordZoneChanges  = "didFetchRecordZoneChanges"
	EventTypeWillSendChanges            = "willSendChanges"
	EventTypeDidSendChanges             = "didSendChanges"
	EventTypeUnknown                    = "unknown"
)

// EventData is one structured log event: where it happened, what kind
// of event it was, and the event-specific payload. Values are built
// once by the translator and never mutated.
type EventData struct {
	DatabaseScope string
	EventType     string
	Details       Details
}

// Details carries the payload for the event named by EventType. Exactly
// the field matching EventType is set; all others are nil. An unknown
// event sets StateUpdate (the empty payload).
type Details struct {
	StateUpdate                *StateUpdateDetails
	AccountChange              *AccountChangeDetails
	FetchedDatabaseChanges     *FetchedDatabaseChangesDetails
	SentDatabaseChanges        *SentDatabaseChangesDetails
	FetchedRecordZoneChanges   *FetchedRecordZoneChangesDetails
	SentRecordZoneChanges      *SentRecordZoneChangesDetails
	WillFetchChanges           *WillFetchChangesDetails
	DidFetchChanges            *DidFetchChangesDetails
	WillFetchRecordZoneChanges *WillFetchRecordZoneChangesDetails
	DidFetchRecordZoneChanges  *DidFetchRecordZoneChangesDetails
	WillSendChanges            *WillSendChangesDetails
	DidSendChanges             *DidSendChangesDetails
}

type StateUpdateDetails struct{}

// Account identifies an account user record as plain display strings.
type Account struct {
	UserID    string
	ZoneName  string
	OwnerName string
}

type AccountChangeDetails struct {
	ChangeType string
	Previous   *Account
	Current    *Account
}

// Zone is a zone identifier reduced to its display parts.
type Zone struct {
	ZoneName  string
	OwnerName string
}

// DisplayName renders the zone as "zoneName:ownerName"; lists of zones
// are sorted by this string.
func (z Zone) DisplayName() string {
	return z.ZoneName + ":" + z.OwnerName
}

// ZoneDeletion pairs a zone with its already-translated deletion
// reason.
type ZoneDeletion struct {
	Zone   Zone
	Reason string
}

// ZoneFailure pairs a zone with the display string of the error that
// failed it.
type ZoneFailure struct {
	Zone   Zone
	Reason string
}

type FetchedDatabaseChangesDetails struct {
	Modified []Zone
	Deleted  []ZoneDeletion
}

type SentDatabaseChangesDetails struct {
	Saved         []Zone
	FailedSaves   []ZoneFailure
	Deleted       []Zone
	FailedDeletes []ZoneFailure
}

// FetchedRecordZoneChangesDetails summarizes record-level fetches as
// occurrence counts per record type. Per-record detail is deliberately
// discarded to keep log volume bounded.
type FetchedRecordZoneChangesDetails struct {
	Modified map[string]int
	Deleted  map[string]int
}

// SentRecordZoneChangesDetails groups saves by record type and deletes
// by zone display name (deleted record IDs carry no record type).
type SentRecordZoneChangesDetails struct {
	Saved         map[string]int
	FailedSaves   map[string]int
	DeletedByZone map[string]int
	FailedDeletes map[string]int
}

type WillFetchChangesDetails struct {
	Reason string
}

type DidFetchChangesDetails struct{}

type WillFetchRecordZoneChangesDetails struct {
	Zone Zone
}

type DidFetchRecordZoneChangesDetails struct {
	Zone Zone
}

type WillSendChangesDetails struct {
	Reason string
}

type DidSendChangesDetails struct{}

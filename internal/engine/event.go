package engine

type EventKind string

const (
	KindStateUpdate                EventKind = "stateUpdate"
	KindAccountChange              EventKind = "accountChange"
	KindFetchedDatabaseChanges     EventKind = "fetchedDatabaseChanges"
	KindSentDatabaseChanges        EventKind = "sentDatabaseChanges"
	KindFetchedRecordZoneChanges   EventKind = "fetchedRecordZoneChanges"
	KindSentRecordZoneChanges      EventKind = "sentRecordZoneChanges"
	KindWillFetchChanges           EventKind = "willFetchChanges"
	KindDidFetchChanges            EventKind = "didFetchChanges"
	KindWillFetchRecordZoneChanges EventKind = "willFetchRecordZoneChanges"
	KindDidFetchRecordZoneChanges  EventKind = "didFetchRecordZoneChanges"
	KindWillSendChanges            EventKind = "willSendChanges"
	KindDidSendChanges             EventKind = "didSendChanges"

	// KindUnknown covers event kinds the engine may grow that this
	// vocabulary does not know about yet.
	KindUnknown EventKind = "unknown"
)

// Event is one sync-engine lifecycle notification. Exactly the payload
// field matching Kind is set; all others are nil.
type Event struct {
	Kind EventKind `json:"kind"`

	StateUpdate                *StateUpdateEvent                `json:"stateUpdate,omitempty"`
	AccountChange              *AccountChangeEvent              `json:"accountChange,omitempty"`
	FetchedDatabaseChanges     *FetchedDatabaseChangesEvent     `json:"fetchedDatabaseChanges,omitempty"`
	SentDatabaseChanges        *SentDatabaseChangesEvent        `json:"sentDatabaseChanges,omitempty"`
	FetchedRecordZoneChanges   *FetchedRecordZoneChangesEvent   `json:"fetchedRecordZoneChanges,omitempty"`
	SentRecordZoneChanges      *SentRecordZoneChangesEvent      `json:"sentRecordZoneChanges,omitempty"`
	WillFetchChanges           *WillFetchChangesEvent           `json:"willFetchChanges,omitempty"`
	DidFetchChanges            *DidFetchChangesEvent            `json:"didFetchChanges,omitempty"`
	WillFetchRecordZoneChanges *WillFetchRecordZoneChangesEvent `json:"willFetchRecordZoneChanges,omitempty"`
	DidFetchRecordZoneChanges  *DidFetchRecordZoneChangesEvent  `json:"didFetchRecordZoneChanges,omitempty"`
	WillSendChanges            *WillSendChangesEvent            `json:"willSendChanges,omitempty"`
	DidSendChanges             *DidSendChangesEvent             `json:"didSendChanges,omitempty"`
}

// ZoneID names a record zone within a database, qualified by the
// account that owns it.
type ZoneID struct {
	ZoneName  string `json:"zone_name"`
	OwnerName string `json:"owner_name"`
}

type RecordID struct {
	RecordName string `json:"record_name"`
	Zone       ZoneID `json:"zone"`
}

// UserID identifies the account user record behind an account change.
type UserID struct {
	UserRecordName string `json:"user_record_name"`
	ZoneName       string `json:"zone_name"`
	OwnerName      string `json:"owner_name"`
}

type AccountChangeKind string

const (
	AccountSignIn         AccountChangeKind = "signIn"
	AccountSignOut        AccountChangeKind = "signOut"
	AccountSwitchAccounts AccountChangeKind = "switchAccounts"
	AccountUnknown        AccountChangeKind = "unknown"
)

// DeletionReason says why the server removed a zone.
type DeletionReason string

const (
	DeletionReasonDeleted            DeletionReason = "deleted"
	DeletionReasonPurged             DeletionReason = "purged"
	DeletionReasonEncryptedDataReset DeletionReason = "encryptedDataReset"
	DeletionReasonUnknown            DeletionReason = "unknown"
)

// ErrorCode is the engine's failure vocabulary for rejected saves and
// deletes. The set is open: the engine may report codes not listed
// here, and consumers must treat unrecognized values as unknown.
type ErrorCode string

const (
	ErrNetworkFailure        ErrorCode = "networkFailure"
	ErrNetworkUnavailable    ErrorCode = "networkUnavailable"
	ErrNotAuthenticated      ErrorCode = "notAuthenticated"
	ErrQuotaExceeded         ErrorCode = "quotaExceeded"
	ErrZoneNotFound          ErrorCode = "zoneNotFound"
	ErrServerRecordChanged   ErrorCode = "serverRecordChanged"
	ErrServerRejectedRequest ErrorCode = "serverRejectedRequest"
	ErrUnknownItem           ErrorCode = "unknownItem"
	ErrRequestRateLimited    ErrorCode = "requestRateLimited"
	ErrInternalError         ErrorCode = "internalError"
)

type SyncReason string

const (
	SyncReasonScheduled SyncReason = "scheduled"
	SyncReasonManual    SyncReason = "manual"
	SyncReasonUnknown   SyncReason = "unknown"
)

// StateUpdateEvent carries new state serialization for the engine's
// owner to persist. The serialization itself is opaque here.
type StateUpdateEvent struct{}

type AccountChangeEvent struct {
	ChangeType AccountChangeKind `json:"change_type"`
	Previous   *UserID           `json:"previous,omitempty"`
	Current    *UserID           `json:"current,omitempty"`
}

type ZoneDeletion struct {
	ZoneID ZoneID         `json:"zone_id"`
	Reason DeletionReason `json:"reason"`
}

type ZoneFailure struct {
	ZoneID ZoneID    `json:"zone_id"`
	Code   ErrorCode `json:"code"`
}

type FetchedDatabaseChangesEvent struct {
	Modifications []ZoneID       `json:"modifications,omitempty"`
	Deletions     []ZoneDeletion `json:"deletions,omitempty"`
}

type SentDatabaseChangesEvent struct {
	SavedZones        []ZoneID      `json:"saved_zones,omitempty"`
	FailedZoneSaves   []ZoneFailure `json:"failed_zone_saves,omitempty"`
	DeletedZoneIDs    []ZoneID      `json:"deleted_zone_ids,omitempty"`
	FailedZoneDeletes []ZoneFailure `json:"failed_zone_deletes,omitempty"`
}

type RecordChange struct {
	RecordID   RecordID `json:"record_id"`
	RecordType string   `json:"record_type"`
}

type RecordFailure struct {
	RecordID   RecordID  `json:"record_id"`
	RecordType string    `json:"record_type"`
	Code       ErrorCode `json:"code"`
}

type FetchedRecordZoneChangesEvent struct {
	Modifications []RecordChange `json:"modifications,omitempty"`
	Deletions     []RecordChange `json:"deletions,omitempty"`
}

type SentRecordZoneChangesEvent struct {
	SavedRecords        []RecordChange  `json:"saved_records,omitempty"`
	FailedRecordSaves   []RecordFailure `json:"failed_record_saves,omitempty"`
	DeletedRecordIDs    []RecordID      `json:"deleted_record_ids,omitempty"`
	FailedRecordDeletes []RecordFailure `json:"failed_record_deletes,omitempty"`
}

type WillFetchChangesEvent struct {
	Reason SyncReason `json:"reason"`
}

type DidFetchChangesEvent struct{}

type WillFetchRecordZoneChangesEvent struct {
	ZoneID ZoneID `json:"zone_id"`
}

type DidFetchRecordZoneChangesEvent struct {
	ZoneID ZoneID `json:"zone_id"`
}

type WillSendChangesEvent struct {
	Reason SyncReason `json:"reason"`
}

type DidSendChangesEvent struct{}

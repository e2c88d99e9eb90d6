package logging

import "github.com/jaa/synclog/internal/engine"

// unknownLabel is what every unrecognized enum value renders as.
// Lookups degrade to it; they never fail.
const unknownLabel = "unknown"

// CodeMap holds the display strings for the engine's error-code and
// deletion-reason vocabularies. The tables are configuration data: the
// vocabularies belong to the engine, not to this layer, so deployments
// can extend or reword them without a code change. The zero value
// renders everything as "unknown".
type CodeMap struct {
	Errors          map[engine.ErrorCode]string
	DeletionReasons map[engine.DeletionReason]string
}

// DefaultCodeMap returns the compiled-in display tables for the engine
// vocabulary known at build time.
func DefaultCodeMap() CodeMap {
	return CodeMap{
		Errors: map[engine.ErrorCode]string{
			engine.ErrNetworkFailure:        "network failure",
			engine.ErrNetworkUnavailable:    "network unavailable",
			engine.ErrNotAuthenticated:      "not authenticated",
			engine.ErrQuotaExceeded:         "quota exceeded",
			engine.ErrZoneNotFound:          "zone not found",
			engine.ErrServerRecordChanged:   "server record changed",
			engine.ErrServerRejectedRequest: "server rejected request",
			engine.ErrUnknownItem:           "unknown item",
			engine.ErrRequestRateLimited:    "request rate limited",
			engine.ErrInternalError:         "internal error",
		},
		DeletionReasons: map[engine.DeletionReason]string{
			engine.DeletionReasonDeleted:            "deleted",
			engine.DeletionReasonPurged:             "purged",
			engine.DeletionReasonEncryptedDataReset: "encrypted data reset",
		},
	}
}

// Merge returns a copy of m with non-empty override entries layered on
// top. Neither input is mutated.
func (m CodeMap) Merge(overrides CodeMap) CodeMap {
	merged := CodeMap{
		Errors:          make(map[engine.ErrorCode]string, len(m.Errors)),
		DeletionReasons: make(map[engine.DeletionReason]string, len(m.DeletionReasons)),
	}
	for code, label := range m.Errors {
		merged.Errors[code] = label
	}
	for reason, label := range m.DeletionReasons {
		merged.DeletionReasons[reason] = label
	}
	for code, label := range overrides.Errors {
		if label != "" {
			merged.Errors[code] = label
		}
	}
	for reason, label := range overrides.DeletionReasons {
		if label != "" {
			merged.DeletionReasons[reason] = label
		}
	}
	return merged
}

func (m CodeMap) errorLabel(code engine.ErrorCode) string {
	if label, ok := m.Errors[code]; ok && label != "" {
		return label
	}
	return unknownLabel
}

func (m CodeMap) deletionReasonLabel(reason engine.DeletionReason) string {
	if label, ok := m.DeletionReasons[reason]; ok && label != "" {
		return label
	}
	return unknownLabel
}

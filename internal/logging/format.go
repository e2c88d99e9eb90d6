package logging

import (
	"fmt"
	"sort"
	"strings"
)

const (
	okMarker      = "OK"
	failedMarker  = "FAILED"
	noFailures    = "No failures"
	noSaves       = "No saves"
	noDeletions   = "No deletions"
	noModified    = "No modifications"
	unknownUser   = "<none>"
	unknownDetail = "Unknown event"
)

// FormatDetails renders the event payload as a fixed multi-line
// template. It is total: every payload shape, including a missing one,
// renders to something readable.
func FormatDetails(data EventData) string {
	d := data.Details
	switch {
	case data.EventType == EventTypeUnknown || detailsEmpty(d):
		return unknownDetail

	case d.StateUpdate != nil:
		return "State update available"

	case d.AccountChange != nil:
		lines := []string{fmt.Sprintf("Account change (%s)", d.AccountChange.ChangeType)}
		lines = append(lines, "  Previous user: "+formatAccount(d.AccountChange.Previous))
		lines = append(lines, "  Current user: "+formatAccount(d.AccountChange.Current))
		return strings.Join(lines, "\n")

	case d.FetchedDatabaseChanges != nil:
		return strings.Join([]string{
			"Fetched database changes",
			"  Modified zones: " + formatZones(d.FetchedDatabaseChanges.Modified, noModified),
			"  Deleted zones: " + formatZoneDeletions(d.FetchedDatabaseChanges.Deleted),
		}, "\n")

	case d.SentDatabaseChanges != nil:
		return strings.Join([]string{
			"Sent database changes",
			"  Saved zones: " + formatZones(d.SentDatabaseChanges.Saved, noSaves),
			"  Failed zone saves: " + formatZoneFailures(d.SentDatabaseChanges.FailedSaves),
			"  Deleted zones: " + formatZones(d.SentDatabaseChanges.Deleted, noDeletions),
			"  Failed zone deletes: " + formatZoneFailures(d.SentDatabaseChanges.FailedDeletes),
		}, "\n")

	case d.FetchedRecordZoneChanges != nil:
		return strings.Join([]string{
			"Fetched record zone changes",
			"  Modified records: " + formatCounts(d.FetchedRecordZoneChanges.Modified, noModified),
			"  Deleted records: " + formatCounts(d.FetchedRecordZoneChanges.Deleted, noDeletions),
		}, "\n")

	case d.SentRecordZoneChanges != nil:
		return strings.Join([]string{
			"Sent record zone changes",
			"  Saved records: " + formatCounts(d.SentRecordZoneChanges.Saved, noSaves),
			"  Failed record saves: " + formatFailureCounts(d.SentRecordZoneChanges.FailedSaves),
			"  Deleted records: " + formatCounts(d.SentRecordZoneChanges.DeletedByZone, noDeletions),
			"  Failed record deletes: " + formatFailureCounts(d.SentRecordZoneChanges.FailedDeletes),
		}, "\n")

	case d.WillFetchChanges != nil:
		return fmt.Sprintf("Will fetch changes (%s)", d.WillFetchChanges.Reason)

	case d.DidFetchChanges != nil:
		return "Did fetch changes"

	case d.WillFetchRecordZoneChanges != nil:
		return "Will fetch record zone changes\n  Zone: " + d.WillFetchRecordZoneChanges.Zone.DisplayName()

	case d.DidFetchRecordZoneChanges != nil:
		return "Did fetch record zone changes\n  Zone: " + d.DidFetchRecordZoneChanges.Zone.DisplayName()

	case d.WillSendChanges != nil:
		return fmt.Sprintf("Will send changes (%s)", d.WillSendChanges.Reason)

	case d.DidSendChanges != nil:
		return "Did send changes"
	}
	return unknownDetail
}

func detailsEmpty(d Details) bool {
	return d.StateUpdate == nil &&
		d.AccountChange == nil &&
		d.FetchedDatabaseChanges == nil &&
		d.SentDatabaseChanges == nil &&
		d.FetchedRecordZoneChanges == nil &&
		d.SentRecordZoneChanges == nil &&
		d.WillFetchChanges == nil &&
		d.DidFetchChanges == nil &&
		d.WillFetchRecordZoneChanges == nil &&
		d.DidFetchRecordZoneChanges == nil &&
		d.WillSendChanges == nil &&
		d.DidSendChanges == nil
}

func formatAccount(account *Account) string {
	if account == nil {
		return unknownUser
	}
	return fmt.Sprintf("%s (%s:%s)", account.UserID, account.ZoneName, account.OwnerName)
}

// formatZones renders a zone list as the ok marker, a count, and the
// display names sorted ascending. Sort order is a plain string sort on
// "zoneName:ownerName", not insertion order.
func formatZones(zones []Zone, emptyLabel string) string {
	if len(zones) == 0 {
		return emptyLabel
	}
	names := make([]string, 0, len(zones))
	for _, zone := range zones {
		names = append(names, zone.DisplayName())
	}
	sort.Strings(names)
	return fmt.Sprintf("%s (%d): %s", okMarker, len(names), strings.Join(names, ", "))
}

func formatZoneDeletions(deletions []ZoneDeletion) string {
	if len(deletions) == 0 {
		return noDeletions
	}
	rendered := make([]string, 0, len(deletions))
	for _, d := range deletions {
		rendered = append(rendered, fmt.Sprintf("%s (%s)", d.Zone.DisplayName(), d.Reason))
	}
	sort.Strings(rendered)
	return fmt.Sprintf("%s (%d): %s", okMarker, len(rendered), strings.Join(rendered, ", "))
}

func formatZoneFailures(failures []ZoneFailure) string {
	if len(failures) == 0 {
		return noFailures
	}
	rendered := make([]string, 0, len(failures))
	for _, f := range failures {
		rendered = append(rendered, fmt.Sprintf("%s (%s)", f.Zone.DisplayName(), f.Reason))
	}
	sort.Strings(rendered)
	return fmt.Sprintf("%s (%d): %s", failedMarker, len(rendered), strings.Join(rendered, ", "))
}

// formatCounts renders grouped counts as "name (count)" pairs sorted by
// name.
func formatCounts(counts map[string]int, emptyLabel string) string {
	if len(counts) == 0 {
		return emptyLabel
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	rendered := make([]string, 0, len(names))
	for _, name := range names {
		rendered = append(rendered, fmt.Sprintf("%s (%d)", name, counts[name]))
	}
	return strings.Join(rendered, ", ")
}

func formatFailureCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return noFailures
	}
	return failedMarker + ": " + formatCounts(counts, noFailures)
}

package config

func DefaultTemplate() string {
	return `version: 1
defaults:
  scope: "private"
  format: "console"
  subsystem: "cloudsync"
  category: "sync-events"

# Display strings for engine error codes and deletion reasons. Entries
# here layer over the built-in tables; codes the engine grows later can
# be labeled without waiting for a new release.
codes:
  errors: {}
    # serverRejectedRequest: "rejected by server"
  deletion_reasons: {}
    # purged: "purged by user"
`
}

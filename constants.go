package snowbase

// Response statuses used by the proxy envelope. Clients inspect the
// status field; the HTTP status code is 200 either way.
const (
	StatusSuccessful   = "successful"
	StatusUnsuccessful = "unsuccessful"
)

// previewRowLimit caps the sample rows returned by the preview route.
// The limit is embedded textually into the SELECT, not enforced by the
// adapter.
const previewRowLimit = 100

// Reason prefixes for driver failures surfaced to the caller.
const (
	errPrefixConnect = "Error connecting to Snowflake: "
	errPrefixExecute = "Error executing Snowflake query: "
)

package sources

// ErrorCode classifies remote-lookup failures so callers can tell a service
// that is unreachable apart from one that answered with nothing useful.
type ErrorCode string

const (
	// ErrTransport covers network errors, timeouts and non-2xx statuses.
	ErrTransport ErrorCode = "Transport"
	// ErrMalformed covers responses that could not be parsed as expected.
	ErrMalformed ErrorCode = "MalformedResponse"
	// ErrNoData covers well-formed responses carrying no usable rows.
	ErrNoData ErrorCode = "NoDataFound"
)

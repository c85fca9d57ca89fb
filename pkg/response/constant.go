package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	ServiceUnavailableCode  = 503

	// TimestampFormat is RFC 3339 with nanoseconds so instants survive a
	// marshal/parse round trip.
	TimestampFormat = "2006-01-02T15:04:05.999999999Z07:00"

	// DetailServer is the ErrorResp.Details key used for server-side failures.
	DetailServer = "server"
)

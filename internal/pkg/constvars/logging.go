package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResourceKey       = "resource"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingStatusCodeKey     = "status_code"
	LoggingActionKey         = "action"
	LoggingRowIDKey          = "row_id"
	LoggingRowCountKey       = "row_count"
	LoggingSkippedCountKey   = "skipped_count"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingNotificationKey   = "notification"
	LoggingDurationKey       = "duration"
)

const (
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingSuccessKey    = "success"
)

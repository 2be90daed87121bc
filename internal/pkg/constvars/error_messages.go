package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"url":            "must be a valid URL",
	"oneof":          "must be one of [%s]",
	"gte":            "must be greater than or equal to %s",
	"staff_position": "Invalid position selected",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidPosition               = "Invalid position selected"
	ErrClientInvalidSortField              = "this column cannot be sorted"
	ErrClientRowNotFound                   = "the selected row no longer exists"
	ErrClientLoadCollectionFormat          = "Could not load %s"
	ErrClientInvalidAppointmentTime        = "appointment time must look like 2006-01-02T15:04"

	ErrClientAddPatient     = "Error adding patient"
	ErrClientUpdatePatient  = "Error updating patient"
	ErrClientDeletePatient  = "Error deleting patient"
	ErrClientAddStaff       = "Error adding staff"
	ErrClientUpdateStaff    = "Error updating staff"
	ErrClientDeleteStaff    = "Error deleting staff"
	ErrClientAddAppointment = "Failed to schedule appointment"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime   = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevReadResponseBody  = "failed to read response body of %s"
	ErrDevServerProcess     = "server failed to process the request"
	ErrDevValidationFailed  = "validation failed"
	ErrDevDecodeForm        = "failed to decode form values"
	ErrDevInvalidPosition   = "position %q has no staff endpoint"
	ErrDevPositionChange    = "staff position cannot change from %q to %q"
	ErrDevInvalidSortField  = "unknown sort field %q"
	ErrDevRowNotFound       = "no %s row with id %q"
	ErrDevServerDeadline    = "server deadline exceeded"

	// Hospital API
	ErrDevHMSUnexpectedStatus = "hospital API answered %s with HTTP status %d"
	ErrDevHMSCollectionShape  = "hospital API returned a malformed %s collection"
	ErrDevHMSMutationRejected = "hospital API rejected %s %s"
	ErrDevHMSNonJSONResponse  = "hospital API returned a non-JSON body for %s"
)

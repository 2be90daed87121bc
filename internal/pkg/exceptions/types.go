package exceptions

import (
	"fmt"
	"hms-console/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s %s", constvars.ErrDevInvalidInput, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrDecodeForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDecodeForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadline)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAppointmentTime, constvars.ErrDevCannotParseTime)
	}

	// Routing
	ErrInvalidPosition = func(err error, position string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPosition, fmt.Sprintf(constvars.ErrDevInvalidPosition, position))
	}
	ErrPositionChange = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPosition, fmt.Sprintf(constvars.ErrDevPositionChange, from, to))
	}
	ErrInvalidSortField = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidSortField, fmt.Sprintf(constvars.ErrDevInvalidSortField, field))
	}
	ErrRowNotFound = func(err error, resource constvars.Resource, id string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRowNotFound, fmt.Sprintf(constvars.ErrDevRowNotFound, resource, id))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error, resource constvars.Resource) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevReadResponseBody, resource))
	}

	// Hospital API
	ErrUnexpectedStatus = func(err error, endpoint string, statusCode int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHMSUnexpectedStatus, endpoint, statusCode))
	}
	ErrInvalidCollectionShape = func(err error, resource constvars.Resource) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, fmt.Sprintf(constvars.ErrClientLoadCollectionFormat, resource), fmt.Sprintf(constvars.ErrDevHMSCollectionShape, resource))
	}
	ErrNonJSONResponse = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHMSNonJSONResponse, endpoint))
	}
	// ErrMutationRejected carries the server's own message to the client when it sent one.
	ErrMutationRejected = func(err error, resource constvars.Resource, action, serverMessage, fallback string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = fallback
		}
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, clientMessage, fmt.Sprintf(constvars.ErrDevHMSMutationRejected, action, resource))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)

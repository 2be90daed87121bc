package hmsapi

import (
	"context"
	"errors"
	"net"

	"hms-console/internal/pkg/exceptions"
)

func transportError(err error) *exceptions.CustomError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

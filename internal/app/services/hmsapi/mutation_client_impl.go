package hmsapi

import (
	"bytes"
	"context"
	"hms-console/internal/app/contracts"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type mutationClient struct {
	BaseUrl string
	Timeout time.Duration
	Log     *zap.Logger
}

func NewMutationClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.MutationClient {
	return &mutationClient{
		BaseUrl: baseUrl,
		Timeout: timeout,
		Log:     logger,
	}
}

// Send performs one write. A non-nil result means the server answered; the
// caller decides from result.Succeeded whether the write was accepted.
func (c *mutationClient) Send(ctx context.Context, request *requests.HMSWrite) (*responses.HMSWriteResult, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("mutationClient.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, string(request.Resource)),
		zap.String(constvars.LoggingActionKey, request.Action),
		zap.String(constvars.LoggingEndpointKey, request.Endpoint),
	)

	requestJSON, err := json.Marshal(request.Payload)
	if err != nil {
		c.Log.Error("mutationClient.Send error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, c.BaseUrl+request.Endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("mutationClient.Send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("mutationClient.Send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Endpoint),
			zap.Error(err),
		)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("mutationClient.Send error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err, request.Resource)
	}

	result := &responses.HMSWriteResult{HTTPStatus: resp.StatusCode}
	if gjson.ValidBytes(body) {
		result.Body = gjson.ParseBytes(body)
		result.Status = result.Body.Get(constvars.EnvelopeStatusKey).String()
		result.Message = result.Body.Get(constvars.EnvelopeMessageKey).String()
	} else {
		c.Log.Warn("mutationClient.Send response is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Int(constvars.LoggingResponseLengthKey, len(body)),
		)
	}

	c.Log.Info("mutationClient.Send answered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("status", result.Status),
		zap.Bool("succeeded", result.Succeeded()),
	)
	return result, nil
}

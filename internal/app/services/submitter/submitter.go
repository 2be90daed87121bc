package submitter

import (
	"context"
	"errors"
	"fmt"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/drivers/metrics"
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Mutation is one form submission against the hospital API.
type Mutation struct {
	Resource       constvars.Resource
	Action         string
	Method         string
	Endpoint       string
	Payload        interface{}
	SuccessMessage string
	FailureMessage string
	// Reconcile patches the store after the server confirmed the write.
	Reconcile func(ctx context.Context, result *responses.HMSWriteResult)
}

type Submitter struct {
	Log      *zap.Logger
	Client   contracts.MutationClient
	Notifier contracts.Notifier
	Metrics  *metrics.Collector
}

func NewSubmitter(logger *zap.Logger, client contracts.MutationClient, notifier contracts.Notifier, collector *metrics.Collector) *Submitter {
	return &Submitter{
		Log:      logger,
		Client:   client,
		Notifier: notifier,
		Metrics:  collector,
	}
}

// Submit sends the write and, on success, notifies and reconciles. On failure
// it notifies and returns the error; nothing local is changed so the form
// can be submitted again.
func (s *Submitter) Submit(ctx context.Context, m Mutation) (*responses.HMSWriteResult, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("Submitter.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, string(m.Resource)),
		zap.String(constvars.LoggingActionKey, m.Action),
	)

	result, err := s.Client.Send(ctx, &requests.HMSWrite{
		Resource: m.Resource,
		Action:   m.Action,
		Method:   m.Method,
		Endpoint: m.Endpoint,
		Payload:  m.Payload,
	})
	if err != nil {
		s.Log.Error("Submitter.Submit transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.Metrics.ObserveMutation(m.Resource, m.Action, metrics.OutcomeFailure)
		s.notify(ctx, models.NotificationError, m.FailureMessage)
		return nil, err
	}

	if !result.Succeeded() {
		cause := fmt.Errorf("HTTP %d, status %q", result.HTTPStatus, result.Status)
		rejected := exceptions.ErrMutationRejected(cause, m.Resource, m.Action, result.Message, m.FailureMessage)
		s.Log.Error("Submitter.Submit rejected by server",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, result.HTTPStatus),
			zap.Error(rejected),
		)
		s.Metrics.ObserveMutation(m.Resource, m.Action, metrics.OutcomeFailure)
		s.notify(ctx, models.NotificationError, rejected.ClientMessage)
		return result, rejected
	}

	s.notify(ctx, models.NotificationSuccess, m.SuccessMessage)
	if m.Reconcile != nil {
		m.Reconcile(ctx, result)
	}
	s.Metrics.ObserveMutation(m.Resource, m.Action, metrics.OutcomeSuccess)

	s.Log.Info("Submitter.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, string(m.Resource)),
		zap.String(constvars.LoggingActionKey, m.Action),
	)
	return result, nil
}

// Reject reports a submission that was stopped before any request was sent.
func (s *Submitter) Reject(ctx context.Context, resource constvars.Resource, action string, err error) error {
	message := constvars.ErrClientCannotProcessRequest
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
	}
	s.Log.Warn("Submitter.Reject submission stopped",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, string(resource)),
		zap.String(constvars.LoggingActionKey, action),
		zap.Error(err),
	)
	s.Metrics.ObserveMutation(resource, action, metrics.OutcomeSkipped)
	s.notify(ctx, models.NotificationError, message)
	return err
}

func (s *Submitter) missingRecord(ctx context.Context, resource constvars.Resource) {
	s.Log.Warn("Submitter.Submit server confirmed the write without echoing the record",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, string(resource)),
	)
}

func (s *Submitter) notify(ctx context.Context, level models.NotificationLevel, message string) {
	if s.Notifier == nil || message == "" {
		return
	}
	s.Notifier.Notify(ctx, level, message)
}

// payloadRecord re-reads an outgoing payload the way a server record is read,
// so locally applied updates go through the same normalization.
func payloadRecord(payload interface{}) (gjson.Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return gjson.Result{}, exceptions.ErrCannotMarshalJSON(err)
	}
	return gjson.ParseBytes(body), nil
}

// formValue turns a display value back into an editable one.
func formValue(value string) string {
	if value == constvars.Placeholder {
		return ""
	}
	return value
}

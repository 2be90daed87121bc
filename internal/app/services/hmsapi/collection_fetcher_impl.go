package hmsapi

import (
	"context"
	"fmt"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/drivers/metrics"
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type collectionFetcher struct {
	BaseUrl string
	Timeout time.Duration
	Log     *zap.Logger
	Metrics *metrics.Collector
}

func NewCollectionFetcher(baseUrl string, timeout time.Duration, logger *zap.Logger, collector *metrics.Collector) contracts.CollectionFetcher {
	return &collectionFetcher{
		BaseUrl: baseUrl,
		Timeout: timeout,
		Log:     logger,
		Metrics: collector,
	}
}

func (c *collectionFetcher) FetchPatients(ctx context.Context) ([]models.Patient, error) {
	items, err := c.fetch(ctx, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}

	patients := make([]models.Patient, 0, len(items))
	for _, item := range items {
		patients = append(patients, NormalizePatient(item))
	}
	return patients, nil
}

func (c *collectionFetcher) FetchStaff(ctx context.Context, resource constvars.Resource) ([]models.Staff, error) {
	items, err := c.fetch(ctx, resource)
	if err != nil {
		return nil, err
	}

	staff := make([]models.Staff, 0, len(items))
	for _, item := range items {
		staff = append(staff, NormalizeStaff(item, resource))
	}
	return staff, nil
}

func (c *collectionFetcher) FetchAppointments(ctx context.Context) ([]models.Appointment, error) {
	items, err := c.fetch(ctx, constvars.ResourceAppointments)
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(items))
	for _, item := range items {
		appointments = append(appointments, NormalizeAppointment(item))
	}
	return appointments, nil
}

func (c *collectionFetcher) fetch(ctx context.Context, resource constvars.Resource) ([]gjson.Result, error) {
	items, err := c.fetchCollection(ctx, resource)
	if err != nil {
		c.Metrics.ObserveFetch(resource, metrics.OutcomeFailure)
		return nil, err
	}
	c.Metrics.ObserveFetch(resource, metrics.OutcomeSuccess)
	return c.withIdentity(resource, items), nil
}

// withIdentity drops records that have no id.
func (c *collectionFetcher) withIdentity(resource constvars.Resource, items []gjson.Result) []gjson.Result {
	kept := make([]gjson.Result, 0, len(items))
	for _, item := range items {
		if HasIdentity(item) {
			kept = append(kept, item)
		}
	}
	if skipped := len(items) - len(kept); skipped > 0 {
		c.Log.Warn("collectionFetcher.fetch skipped records without an id",
			zap.String(constvars.LoggingResourceKey, string(resource)),
			zap.Int(constvars.LoggingSkippedCountKey, skipped),
		)
	}
	return kept
}

func (c *collectionFetcher) fetchCollection(ctx context.Context, resource constvars.Resource) ([]gjson.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("collectionFetcher.fetchCollection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, string(resource)),
	)

	endpoint, ok := constvars.CollectionEndpoints[resource]
	if !ok {
		err := fmt.Errorf("no collection endpoint for %q", resource)
		c.Log.Error("collectionFetcher.fetchCollection unknown resource",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidCollectionShape(err, resource)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+endpoint, nil)
	if err != nil {
		c.Log.Error("collectionFetcher.fetchCollection error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("collectionFetcher.fetchCollection error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("collectionFetcher.fetchCollection error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err, resource)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		err := fmt.Errorf("%s", gjson.GetBytes(body, constvars.EnvelopeMessageKey).String())
		c.Log.Error("collectionFetcher.fetchCollection unexpected HTTP status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUnexpectedStatus(err, endpoint, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		c.Log.Error("collectionFetcher.fetchCollection response is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingResponseLengthKey, len(body)),
		)
		return nil, exceptions.ErrNonJSONResponse(nil, endpoint)
	}

	envelope := gjson.ParseBytes(body)
	if status := envelope.Get(constvars.EnvelopeStatusKey).String(); status != constvars.EnvelopeStatusSuccess {
		err := fmt.Errorf("status %q: %s", status, envelope.Get(constvars.EnvelopeMessageKey).String())
		c.Log.Error("collectionFetcher.fetchCollection envelope reports failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidCollectionShape(err, resource)
	}

	collection := envelope.Get(string(resource))
	if !collection.IsArray() {
		err := fmt.Errorf("field %q is not an array", resource)
		c.Log.Error("collectionFetcher.fetchCollection malformed collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidCollectionShape(err, resource)
	}

	items := collection.Array()
	c.Log.Info("collectionFetcher.fetchCollection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, string(resource)),
		zap.Int(constvars.LoggingRowCountKey, len(items)),
	)
	return items, nil
}

package responses

import (
	"hms-console/internal/pkg/constvars"

	"github.com/tidwall/gjson"
)

// HMSWriteResult is the decoded envelope of a hospital API write.
type HMSWriteResult struct {
	HTTPStatus int
	Status     string
	Message    string
	Body       gjson.Result
}

func (r *HMSWriteResult) Succeeded() bool {
	return r != nil &&
		r.HTTPStatus >= constvars.StatusOK &&
		r.HTTPStatus < constvars.StatusMultipleChoices &&
		r.Status == constvars.EnvelopeStatusSuccess
}

// Record returns the created row echoed under its singular key, if any.
func (r *HMSWriteResult) Record(resource constvars.Resource) (gjson.Result, bool) {
	if r == nil {
		return gjson.Result{}, false
	}
	record := r.Body.Get(constvars.RecordKeys[resource])
	if !record.IsObject() {
		return gjson.Result{}, false
	}
	return record, true
}

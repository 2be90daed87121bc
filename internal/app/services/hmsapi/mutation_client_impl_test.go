package hmsapi

import (
	"context"
	"errors"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/exceptions"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func TestMutationClient_Send(t *testing.T) {
	var received gjson.Result
	var contentType string
	server := newFakeHMS(t, func(r chi.Router) {
		r.Post("/patients/add", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			received = gjson.ParseBytes(body)
			contentType = r.Header.Get(constvars.HeaderContentType)
			writeJSON(w, http.StatusCreated, `{"status": "success", "message": "Patient added successfully", "patient": {"_id": "p9", "name": "Jane"}}`)
		})
		r.Put("/patients/update", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"status": "error", "message": "Patient not found"}`)
		})
		r.Delete("/patients/delete", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Internal Server Error"))
		})
	})

	client := NewMutationClient(server.URL, 0, zap.NewNop())

	t.Run("Accepted Write", func(t *testing.T) {
		form := &requests.PatientForm{Name: "Jane", Appointments: "a1, a2"}

		result, err := client.Send(context.Background(), &requests.HMSWrite{
			Resource: constvars.ResourcePatients,
			Action:   constvars.ActionAdd,
			Method:   constvars.MethodPost,
			Endpoint: constvars.EndpointPatientAdd,
			Payload:  form.AddPayload(),
		})

		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Equal(t, "Patient added successfully", result.Message)
		record, ok := result.Record(constvars.ResourcePatients)
		require.True(t, ok)
		assert.Equal(t, "p9", record.Get("_id").String())

		assert.Equal(t, constvars.MIMEApplicationJSON, contentType)
		assert.Equal(t, "Jane", received.Get("name").String())
		assert.Equal(t, 2, len(received.Get("appointments").Array()))
	})

	t.Run("Rejected Write Is Not An Error", func(t *testing.T) {
		result, err := client.Send(context.Background(), &requests.HMSWrite{
			Resource: constvars.ResourcePatients,
			Action:   constvars.ActionUpdate,
			Method:   constvars.MethodPut,
			Endpoint: constvars.EndpointPatientUpdate,
			Payload:  &requests.PatientUpdatePayload{ID: "missing"},
		})

		require.NoError(t, err)
		assert.False(t, result.Succeeded())
		assert.Equal(t, "Patient not found", result.Message)
	})

	t.Run("Non JSON Answer", func(t *testing.T) {
		result, err := client.Send(context.Background(), &requests.HMSWrite{
			Resource: constvars.ResourcePatients,
			Action:   constvars.ActionDelete,
			Method:   constvars.MethodDelete,
			Endpoint: constvars.EndpointPatientDelete,
			Payload:  &requests.DeletePayload{ID: "p1"},
		})

		require.NoError(t, err)
		assert.False(t, result.Succeeded())
		assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus)
		assert.Empty(t, result.Message)
	})

	t.Run("Transport Failure", func(t *testing.T) {
		unreachable := NewMutationClient("http://127.0.0.1:1", 0, zap.NewNop())

		result, err := unreachable.Send(context.Background(), &requests.HMSWrite{
			Resource: constvars.ResourcePatients,
			Action:   constvars.ActionAdd,
			Method:   constvars.MethodPost,
			Endpoint: constvars.EndpointPatientAdd,
			Payload:  &requests.PatientAddPayload{},
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})
}

package models

import (
	"hms-console/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientAppointments(t *testing.T) {
	t.Run("Empty Renders Placeholder", func(t *testing.T) {
		raw, err := json.Marshal(Patient{ID: "p1"})
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, constvars.Placeholder, body["appointments"])
		assert.Equal(t, constvars.Placeholder, PatientAppointments(nil).String())
	})

	t.Run("Non Empty Renders List", func(t *testing.T) {
		appointments := PatientAppointments{{ID: "a1"}, {ID: "a2"}}

		raw, err := json.Marshal(appointments)
		require.NoError(t, err)

		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body, 2)
		assert.Equal(t, "a2", body[1]["id"])
		assert.Equal(t, "2 appointments", appointments.String())
		assert.Equal(t, "1 appointment", appointments[:1].String())
	})
}

func TestDefaultDepartments(t *testing.T) {
	departments := DefaultDepartments()

	require.Len(t, departments, 7)
	assert.Equal(t, "DEPT01", departments[0].Key())
	assert.Equal(t, "Cardiology", departments[0].Name)

	departments[0].Name = "Changed"
	assert.Equal(t, "Cardiology", DefaultDepartments()[0].Name, "each call returns a fresh copy")
}

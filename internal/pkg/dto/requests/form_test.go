package requests

import (
	"hms-console/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDecodeForm(t *testing.T) {
	t.Run("Coerces Scalars To Strings", func(t *testing.T) {
		form := new(PatientForm)

		err := DecodeForm(FormValues{"name": "Jane", "age": 34, "weight": 61.5}, form)

		require.NoError(t, err)
		assert.Equal(t, "Jane", form.Name)
		assert.Equal(t, "34", form.Age)
		assert.Equal(t, "61.5", form.Weight)
	})

	t.Run("Unknown Field Fails", func(t *testing.T) {
		err := DecodeForm(FormValues{"name": "Jane", "nickname": "J"}, new(PatientForm))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nickname")
	})

	t.Run("From Strings And Merge", func(t *testing.T) {
		base := FormValuesFromStrings(map[string]string{"name": "Jane", "age": "34"})

		merged := base.Merge(FormValues{"age": "35"})

		assert.Equal(t, "35", merged["age"])
		assert.Equal(t, "Jane", merged["name"])
		assert.Equal(t, "34", base["age"], "the receiver is unchanged")
	})
}

func TestPatientForm_AddPayload(t *testing.T) {
	form := &PatientForm{Name: "Jane", Appointments: " a1, ,a2 "}

	raw, err := json.Marshal(form.AddPayload())
	require.NoError(t, err)
	body := gjson.ParseBytes(raw)

	assert.Equal(t, "Jane", body.Get("name").String())
	assert.Equal(t, `["a1","a2"]`, body.Get("appointments").Raw)
	assert.False(t, body.Get("_id").Exists())

	empty, err := json.Marshal((&PatientForm{}).AddPayload())
	require.NoError(t, err)
	assert.Equal(t, "[]", gjson.GetBytes(empty, "appointments").Raw, "an empty list is sent, not null")
}

func TestStaffForm_Fields(t *testing.T) {
	form := &StaffForm{Name: "Carla", Specialization: "Cardiology", AssignedDoctor: "Dr. House"}

	doctor := form.Fields(constvars.PositionDoctor)
	require.NotNil(t, doctor.Specialization)
	assert.Equal(t, "Cardiology", *doctor.Specialization)
	assert.Nil(t, doctor.AssignedDoctor)

	nurse := form.Fields(constvars.PositionNurse)
	require.NotNil(t, nurse.AssignedDoctor)
	assert.Equal(t, "Dr. House", *nurse.AssignedDoctor)
	assert.Nil(t, nurse.Specialization)

	raw, err := json.Marshal((&StaffForm{ID: "n1"}).UpdatePayload(constvars.PositionNurse))
	require.NoError(t, err)
	body := gjson.ParseBytes(raw)
	assert.Equal(t, "n1", body.Get("_id").String())
	assert.True(t, body.Get("assignedDoctor").Exists(), "an empty nurse field is still sent")
	assert.False(t, body.Get("specialization").Exists())
	assert.False(t, body.Get("password").Exists())
}

func TestAppointmentForm_AddPayload(t *testing.T) {
	form := &AppointmentForm{PatientID: "p1", DoctorID: "d1", DoctorName: "Dr. House", AppointmentTime: "2024-05-01T09:30"}

	raw, err := json.Marshal(form.AddPayload("2024-05-01 09:30:00"))
	require.NoError(t, err)
	body := gjson.ParseBytes(raw)

	assert.Equal(t, "p1", body.Get("patientId").String())
	assert.Equal(t, "2024-05-01 09:30:00", body.Get("appointment_time").String())
	assert.False(t, body.Get("doctorId").Exists(), "the doctor is sent by name")
}

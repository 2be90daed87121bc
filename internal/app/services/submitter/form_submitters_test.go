package submitter

import (
	"context"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/hmsapi"
	"hms-console/internal/app/services/shared/notifier"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   gjson.Result
}

// fakeHMS answers every write with the configured body and records what it received.
type fakeHMS struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
}

func (f *fakeHMS) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: gjson.ParseBytes(body)})
	response, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": "error", "message": "Not found"}`))
		return
	}
	w.Write([]byte(response))
}

func (f *fakeHMS) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

type fixture struct {
	hms          *fakeHMS
	store        *store.Store
	feed         *notifier.FeedNotifier
	patients     *PatientSubmitter
	staff        *StaffSubmitter
	appointments *AppointmentSubmitter
}

func newFixture(t *testing.T, responses map[string]string) *fixture {
	t.Helper()
	hms := &fakeHMS{responses: responses}
	router := chi.NewRouter()
	router.HandleFunc("/*", hms.handle)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	feed := notifier.NewFeedNotifier(10, zap.NewNop())
	st := store.NewStore(zap.NewNop(), feed)
	base := NewSubmitter(zap.NewNop(), hmsapi.NewMutationClient(server.URL, 0, zap.NewNop()), feed, nil)

	st.SetPatients(func(prev []models.Patient) []models.Patient {
		return []models.Patient{
			{ID: "p1", Name: "Jane", Age: "34", Contact: "0812", Email: "jane@example.com", Appointments: models.PatientAppointments{{ID: "a0"}}},
			{ID: "p2", Name: "John", Age: "40", Contact: constvars.Placeholder, Email: constvars.Placeholder},
		}
	})
	st.SetDoctors(func(prev []models.Staff) []models.Staff {
		return []models.Staff{
			{ID: "d1", Name: "Dr. House", Position: constvars.PositionDoctor, Department: "Diagnostics", Specialization: "Nephrology", Email: "house@example.com"},
			{ID: "d2", Name: "Dr. Grey", Position: constvars.PositionDoctor, Department: "Surgery", Specialization: "General"},
			{ID: "d3", Name: "Dr. Wilson", Position: constvars.PositionDoctor, Department: "Diagnostics"},
		}
	})
	st.SetNurses(func(prev []models.Staff) []models.Staff {
		return []models.Staff{
			{ID: "n1", Name: "Carla", Position: constvars.PositionNurse, AssignedDoctor: "Dr. House", Email: "carla@example.com"},
		}
	})

	return &fixture{
		hms:          hms,
		store:        st,
		feed:         feed,
		patients:     NewPatientSubmitter(base, st),
		staff:        NewStaffSubmitter(base, st),
		appointments: NewAppointmentSubmitter(base, st),
	}
}

func TestPatientSubmitter(t *testing.T) {
	f := newFixture(t, map[string]string{
		"POST /patients/add":      `{"status": "success", "message": "Patient added successfully", "patient": {"_id": "p9", "name": "Mia", "age": "5", "appointments": []}}`,
		"PUT /patients/update":    `{"status": "success", "message": "Patient updated successfully"}`,
		"DELETE /patients/delete": `{"status": "success", "message": "Patient deleted successfully"}`,
	})
	ctx := context.Background()

	t.Run("Add Appends Server Record", func(t *testing.T) {
		created, err := f.patients.Add(ctx, requests.FormValues{"name": "Mia", "age": 5})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "p9", created.ID)
		patients := f.store.Patients()
		require.Len(t, patients, 3)
		assert.Equal(t, "p9", patients[2].ID)
		assert.Equal(t, constvars.Placeholder, patients[2].Appointments.String())

		sent := f.hms.recorded()[0]
		assert.Equal(t, "/patients/add", sent.Path)
		assert.Equal(t, "5", sent.Body.Get("age").String())
		assert.True(t, sent.Body.Get("appointments").IsArray())
	})

	t.Run("Unknown Form Field Is Rejected", func(t *testing.T) {
		before := len(f.hms.recorded())

		_, err := f.patients.Add(ctx, requests.FormValues{"nickname": "M"})

		require.Error(t, err)
		assert.Len(t, f.hms.recorded(), before, "nothing is sent")
	})

	t.Run("Update Replaces Only Matching Row", func(t *testing.T) {
		updated, err := f.patients.Update(ctx, "p1", requests.FormValues{"age": "35"})

		require.NoError(t, err)
		assert.Equal(t, "35", updated.Age)
		assert.Equal(t, "Jane", updated.Name, "unchanged fields keep their value")
		assert.Len(t, updated.Appointments, 1, "appointments survive an update")

		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, http.MethodPut, sent.Method)
		assert.Equal(t, "p1", sent.Body.Get("_id").String())
		assert.Equal(t, "jane@example.com", sent.Body.Get("email").String())

		patients := f.store.Patients()
		assert.Equal(t, "35", patients[0].Age)
		assert.Equal(t, "John", patients[1].Name)
	})

	t.Run("Update Sends Empty String For Placeholders", func(t *testing.T) {
		_, err := f.patients.Update(ctx, "p2", requests.FormValues{"name": "Johnny"})
		require.NoError(t, err)

		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "", sent.Body.Get("email").String())
	})

	t.Run("Delete Removes Exactly One Row", func(t *testing.T) {
		err := f.patients.Delete(ctx, "p2")

		require.NoError(t, err)
		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, http.MethodDelete, sent.Method)
		assert.Equal(t, "p2", sent.Body.Get("_id").String())
		assert.Equal(t, "Johnny", sent.Body.Get("name").String())

		_, found := store.FindByKey(f.store.Patients(), "p2")
		assert.False(t, found)
		assert.Len(t, f.store.Patients(), 2)
	})

	t.Run("Missing Row", func(t *testing.T) {
		err := f.patients.Delete(ctx, "nobody")

		require.Error(t, err)
		notifications := f.feed.Drain()
		assert.Equal(t, constvars.ErrClientRowNotFound, notifications[len(notifications)-1].Message)
	})
}

func TestStaffSubmitter_Routing(t *testing.T) {
	f := newFixture(t, map[string]string{
		"POST /doctor/add":      `{"status": "success", "message": "Doctor added successfully", "doctor": {"_id": "d9", "name": "Dr. Cuddy", "specialization": "Endocrinology"}}`,
		"POST /nurse/add":       `{"status": "success", "message": "Nurse added successfully", "nurse": {"_id": "n9", "name": "Ann", "assignedDoctor": "Dr. Cuddy"}}`,
		"PUT /nurse/update":     `{"status": "success", "message": "Nurse updated successfully"}`,
		"DELETE /doctor/delete": `{"status": "success", "message": "Doctor deleted successfully"}`,
	})
	ctx := context.Background()

	t.Run("Doctor Add Uses Doctor Endpoint And Fields", func(t *testing.T) {
		created, err := f.staff.Add(ctx, requests.FormValues{
			"name": "Dr. Cuddy", "position": "doctor", "specialization": "Endocrinology",
			"assignedDoctor": "ignored", "contact": "999", "experience": "20", "password": "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.PositionDoctor, created.Position)

		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "/doctor/add", sent.Path)
		assert.Equal(t, "Endocrinology", sent.Body.Get("specialization").String())
		assert.False(t, sent.Body.Get("assignedDoctor").Exists())
		assert.Equal(t, "999", sent.Body.Get("contact_number").String())
		assert.Equal(t, "20", sent.Body.Get("experience_years").String())
		assert.Equal(t, "secret", sent.Body.Get("password").String())
		assert.Len(t, f.store.Doctors(), 4)
		assert.Equal(t, "Doctor added successfully", f.feed.Drain()[0].Message)
	})

	t.Run("Nurse Add Uses Nurse Endpoint And Fields", func(t *testing.T) {
		_, err := f.staff.Add(ctx, requests.FormValues{"name": "Ann", "position": "Nurse", "assignedDoctor": "Dr. Cuddy"})

		require.NoError(t, err)
		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "/nurse/add", sent.Path)
		assert.Equal(t, "Dr. Cuddy", sent.Body.Get("assignedDoctor").String())
		assert.False(t, sent.Body.Get("specialization").Exists())
		assert.Len(t, f.store.Nurses(), 2)
	})

	t.Run("Invalid Position Sends Nothing", func(t *testing.T) {
		before := len(f.hms.recorded())
		f.feed.Drain()

		_, err := f.staff.Add(ctx, requests.FormValues{"name": "Bob", "position": "Janitor"})

		require.Error(t, err)
		assert.Len(t, f.hms.recorded(), before)
		notifications := f.feed.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.ErrClientInvalidPosition, notifications[0].Message)
	})

	t.Run("Nurse Update Finds Row And Routes By Position", func(t *testing.T) {
		updated, err := f.staff.Update(ctx, "n1", requests.FormValues{"shift": "Night"})

		require.NoError(t, err)
		assert.Equal(t, "Night", updated.Shift)
		assert.Equal(t, "Dr. House", updated.AssignedDoctor)

		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "/nurse/update", sent.Path)
		assert.Equal(t, "n1", sent.Body.Get("_id").String())
		assert.False(t, sent.Body.Get("password").Exists(), "an empty password is not sent")

		nurse, ok := store.FindByKey(f.store.Nurses(), "n1")
		require.True(t, ok)
		assert.Equal(t, "Night", nurse.Shift)
	})

	t.Run("Update Cannot Move A Doctor To Nurses", func(t *testing.T) {
		before := len(f.hms.recorded())
		f.feed.Drain()

		_, err := f.staff.Update(ctx, "d1", requests.FormValues{"position": "Nurse", "shift": "Night"})

		require.Error(t, err)
		assert.Len(t, f.hms.recorded(), before, "the nurse endpoint is never called")
		notifications := f.feed.Drain()
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.ErrClientInvalidPosition, notifications[0].Message)

		doctor, ok := store.FindByKey(f.store.Doctors(), "d1")
		require.True(t, ok)
		assert.Equal(t, constvars.PositionDoctor, doctor.Position)
		_, inNurses := store.FindByKey(f.store.Nurses(), "d1")
		assert.False(t, inNurses)
	})

	t.Run("Update Accepts The Current Position In Any Case", func(t *testing.T) {
		_, err := f.staff.Update(ctx, "n1", requests.FormValues{"position": "nurse", "shift": "Day"})

		require.NoError(t, err)
		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "/nurse/update", sent.Path)
		nurse, _ := store.FindByKey(f.store.Nurses(), "n1")
		assert.Equal(t, "Day", nurse.Shift)
	})

	t.Run("Doctor Delete", func(t *testing.T) {
		err := f.staff.Delete(ctx, "d2")

		require.NoError(t, err)
		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "/doctor/delete", sent.Path)
		assert.Equal(t, "Dr. Grey", sent.Body.Get("name").String())
		_, found := store.FindByKey(f.store.Doctors(), "d2")
		assert.False(t, found)
	})

	t.Run("Server Rejection Leaves Store Untouched", func(t *testing.T) {
		before := f.store.Nurses()

		err := f.staff.Delete(ctx, "n1")

		require.Error(t, err)
		assert.Equal(t, before, f.store.Nurses())
		notifications := f.feed.Drain()
		assert.Equal(t, "Not found", notifications[len(notifications)-1].Message)
	})
}

func TestAppointmentSubmitter(t *testing.T) {
	f := newFixture(t, map[string]string{
		"POST /appointment/add": `{"status": "success", "message": "Appointment added successfully", "appointment": {"_id": "a9", "patient_id": "p1", "doctor_id": "d1", "doctorName": "Dr. House", "patientName": "Jane", "appointment_time": "Wed, 01 May 2024 09:30:00 GMT"}}`,
	})
	ctx := context.Background()

	t.Run("Fills Patient And Doctor From Store", func(t *testing.T) {
		created, err := f.appointments.Add(ctx, requests.FormValues{
			"patientName":     "Jane",
			"department":      "Diagnostics",
			"appointmentTime": "2024-05-01T09:30",
			"reason":          "Checkup",
		})

		require.NoError(t, err)
		assert.Equal(t, "a9", created.ID)
		assert.Equal(t, "Dr. House", created.DoctorName)

		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "p1", sent.Body.Get("patientId").String())
		assert.Equal(t, "0812", sent.Body.Get("contact").String())
		assert.Equal(t, "Dr. House", sent.Body.Get("doctorName").String(), "first doctor of the department")
		assert.Equal(t, "2024-05-01 09:30:00", sent.Body.Get("appointment_time").String())

		appointments := f.store.Appointments()
		require.Len(t, appointments, 1)
		assert.Equal(t, "a9", appointments[0].ID)
	})

	t.Run("Doctor Id Wins Over Department", func(t *testing.T) {
		_, err := f.appointments.Add(ctx, requests.FormValues{
			"patientId":       "p2",
			"doctorId":        "d2",
			"department":      "Diagnostics",
			"appointmentTime": "2024-05-01 10:00:00",
		})

		require.NoError(t, err)
		sent := f.hms.recorded()[len(f.hms.recorded())-1]
		assert.Equal(t, "John", sent.Body.Get("patientName").String())
		assert.Equal(t, "", sent.Body.Get("contact").String(), "placeholders are not copied into the form")
		assert.Equal(t, "Dr. Grey", sent.Body.Get("doctorName").String())
		assert.Equal(t, "Diagnostics", sent.Body.Get("department").String(), "typed values are kept")
	})

	t.Run("Bad Time Sends Nothing", func(t *testing.T) {
		before := len(f.hms.recorded())

		_, err := f.appointments.Add(ctx, requests.FormValues{"patientId": "p1", "appointmentTime": "tomorrow"})

		require.Error(t, err)
		assert.Len(t, f.hms.recorded(), before)
	})

	t.Run("Missing Time Sends Nothing", func(t *testing.T) {
		before := len(f.hms.recorded())

		_, err := f.appointments.Add(ctx, requests.FormValues{"patientId": "p1"})

		require.Error(t, err)
		assert.Len(t, f.hms.recorded(), before)
	})

	t.Run("Departments", func(t *testing.T) {
		assert.Equal(t, []string{"Diagnostics", "Surgery"}, f.appointments.Departments())
	})
}

func TestAppointmentFormHelpers(t *testing.T) {
	patients := []models.Patient{{ID: "p1", Name: "Jane"}, {ID: "Jane", Name: "Other"}}

	patient, ok := SelectPatient(patients, "Jane")
	require.True(t, ok)
	assert.Equal(t, "Jane", patient.ID, "an exact id match wins over a name match")

	_, ok = SelectPatient(patients, "")
	assert.False(t, ok)

	doctors := []models.Staff{
		{ID: "d1", Department: "Cardiology"},
		{ID: "d2", Department: constvars.Placeholder},
		{ID: "d3", Department: "Cardiology"},
	}
	assert.Equal(t, []string{"Cardiology"}, DoctorDepartments(doctors))
	assert.Len(t, DoctorsInDepartment(doctors, "Cardiology"), 2)
	assert.Empty(t, DoctorsInDepartment(doctors, "Neurology"))

	_, ok = SelectDoctor(doctors, "")
	assert.False(t, ok)
	doctor, ok := SelectDoctor(doctors, "d3")
	require.True(t, ok)
	assert.Equal(t, "d3", doctor.ID)
}

func TestPatientSubmitter_EchoWithoutIdIsNotStored(t *testing.T) {
	f := newFixture(t, map[string]string{
		"POST /patients/add": `{"status": "success", "message": "Patient added successfully", "patient": {"name": "Mia"}}`,
	})

	created, err := f.patients.Add(context.Background(), requests.FormValues{"name": "Mia"})

	require.NoError(t, err, "the server accepted the write")
	assert.Nil(t, created)
	assert.Len(t, f.store.Patients(), 2)
	_, found := store.FindByKey(f.store.Patients(), constvars.Placeholder)
	assert.False(t, found)
}

package listview

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"

	"go.uber.org/zap"
)

var AppointmentDefinition = Definition[models.Appointment]{
	Resource: constvars.ResourceAppointments,
	Fields: map[string]func(models.Appointment) string{
		"id":              func(a models.Appointment) string { return a.ID },
		"patientId":       func(a models.Appointment) string { return a.PatientID },
		"doctorId":        func(a models.Appointment) string { return a.DoctorID },
		"patientName":     func(a models.Appointment) string { return a.PatientName },
		"doctorName":      func(a models.Appointment) string { return a.DoctorName },
		"appointmentTime": func(a models.Appointment) string { return a.AppointmentTime },
		"department":      func(a models.Appointment) string { return a.Department },
		"reason":          func(a models.Appointment) string { return a.Reason },
	},
	FilterFields: []string{"doctorName", "patientName"},
	DefaultSort:  SortSpec{Field: "appointmentTime"},
}

func NewAppointmentView(st *store.Store, logger *zap.Logger) *Controller[models.Appointment] {
	view := NewController(AppointmentDefinition, st.Appointments, logger)
	view.Attach(st)
	return view
}

package hmsapi

import (
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"strconv"

	"github.com/tidwall/gjson"
)

// displayValue applies the placeholder rule: absent, null, false, zero and
// empty values all render as the placeholder.
func displayValue(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		if value.Str == "" {
			return constvars.Placeholder
		}
		return value.Str
	case gjson.Number:
		if value.Num == 0 {
			return constvars.Placeholder
		}
		return strconv.FormatFloat(value.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.JSON:
		return value.Raw
	default:
		return constvars.Placeholder
	}
}

// firstValue returns the first path that holds a displayable value.
func firstValue(item gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := displayValue(item.Get(path)); value != constvars.Placeholder {
			return value
		}
	}
	return constvars.Placeholder
}

func identity(item gjson.Result) string {
	return firstValue(item, "_id", "_id.$oid", "id")
}

// HasIdentity reports whether item carries an id. Rows without one would all
// share the placeholder key.
func HasIdentity(item gjson.Result) bool {
	return identity(item) != constvars.Placeholder
}

func NormalizePatient(item gjson.Result) models.Patient {
	patient := models.Patient{
		ID:         identity(item),
		Name:       displayValue(item.Get("name")),
		Age:        displayValue(item.Get("age")),
		Weight:     displayValue(item.Get("weight")),
		Height:     displayValue(item.Get("height")),
		Contact:    displayValue(item.Get("contact")),
		Email:      displayValue(item.Get("email")),
		Address:    displayValue(item.Get("address")),
		Gender:     displayValue(item.Get("gender")),
		BloodGroup: displayValue(item.Get("bloodGroup")),
	}

	appointments := item.Get("appointments")
	if appointments.IsArray() {
		for _, appointment := range appointments.Array() {
			patient.Appointments = append(patient.Appointments, NormalizeAppointment(appointment))
		}
	}
	return patient
}

// NormalizeStaff forces the position from the collection the record came from.
func NormalizeStaff(item gjson.Result, resource constvars.Resource) models.Staff {
	var position string
	switch resource {
	case constvars.ResourceDoctors:
		position = constvars.PositionDoctor
	case constvars.ResourceNurses:
		position = constvars.PositionNurse
	default:
		position = displayValue(item.Get("role"))
	}

	return models.Staff{
		ID:             identity(item),
		Name:           displayValue(item.Get("name")),
		Position:       position,
		Specialization: displayValue(item.Get("specialization")),
		AssignedDoctor: firstValue(item, "assignedDoctor", "assigned_doctor"),
		Department:     displayValue(item.Get("department")),
		Contact:        firstValue(item, "contact_number", "contact"),
		Email:          displayValue(item.Get("email")),
		Address:        displayValue(item.Get("address")),
		Experience:     firstValue(item, "experience_years", "experience"),
		Age:            displayValue(item.Get("age")),
		Gender:         displayValue(item.Get("gender")),
		Education:      displayValue(item.Get("education")),
		Shift:          displayValue(item.Get("shift")),
	}
}

// NormalizeAppointment accepts the list shape (snake_case) and the shape the
// add endpoint echoes back (camelCase).
func NormalizeAppointment(item gjson.Result) models.Appointment {
	return models.Appointment{
		ID:              identity(item),
		PatientID:       firstValue(item, "patient_id", "patientId"),
		DoctorID:        firstValue(item, "doctor_id", "doctorId"),
		PatientName:     firstValue(item, "patient_name", "patientName"),
		DoctorName:      firstValue(item, "doctor_name", "doctorName"),
		AppointmentTime: firstValue(item, "appointment_time", "appointmentTime"),
		Department:      displayValue(item.Get("department")),
		Reason:          displayValue(item.Get("reason")),
	}
}

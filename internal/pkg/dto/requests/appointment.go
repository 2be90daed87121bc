package requests

type AppointmentForm struct {
	PatientID       string `form:"patientId"`
	PatientName     string `form:"patientName"`
	Contact         string `form:"contact"`
	DoctorID        string `form:"doctorId"`
	DoctorName      string `form:"doctorName"`
	Department      string `form:"department"`
	AppointmentTime string `form:"appointmentTime" validate:"required"`
	Reason          string `form:"reason"`
}

type AppointmentAddPayload struct {
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	Contact         string `json:"contact"`
	Department      string `json:"department"`
	DoctorName      string `json:"doctorName"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
}

// AddPayload expects appointmentTime already formatted for the API.
func (f *AppointmentForm) AddPayload(appointmentTime string) *AppointmentAddPayload {
	return &AppointmentAddPayload{
		PatientID:       f.PatientID,
		PatientName:     f.PatientName,
		Contact:         f.Contact,
		Department:      f.Department,
		DoctorName:      f.DoctorName,
		AppointmentTime: appointmentTime,
		Reason:          f.Reason,
	}
}

package models

type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	PatientName     string `json:"patientName"`
	DoctorName      string `json:"doctorName"`
	AppointmentTime string `json:"appointmentTime"`
	Department      string `json:"department"`
	Reason          string `json:"reason"`
}

func (a Appointment) Key() string { return a.ID }

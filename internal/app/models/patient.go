package models

import (
	"fmt"
	"hms-console/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Patient struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Age          string              `json:"age"`
	Weight       string              `json:"weight"`
	Height       string              `json:"height"`
	Contact      string              `json:"contact"`
	Email        string              `json:"email"`
	Address      string              `json:"address"`
	Gender       string              `json:"gender"`
	BloodGroup   string              `json:"bloodGroup"`
	Appointments PatientAppointments `json:"appointments"`
}

func (p Patient) Key() string { return p.ID }

// PatientAppointments renders as the placeholder when there is nothing to list.
type PatientAppointments []Appointment

func (a PatientAppointments) String() string {
	switch len(a) {
	case 0:
		return constvars.Placeholder
	case 1:
		return "1 appointment"
	default:
		return fmt.Sprintf("%d appointments", len(a))
	}
}

func (a PatientAppointments) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return json.Marshal(constvars.Placeholder)
	}
	return json.Marshal([]Appointment(a))
}

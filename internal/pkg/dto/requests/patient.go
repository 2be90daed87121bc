package requests

import "strings"

type PatientForm struct {
	ID           string `form:"id"`
	Name         string `form:"name"`
	Age          string `form:"age"`
	Weight       string `form:"weight"`
	Height       string `form:"height"`
	Contact      string `form:"contact"`
	Email        string `form:"email"`
	Address      string `form:"address"`
	Gender       string `form:"gender"`
	BloodGroup   string `form:"bloodGroup"`
	Appointments string `form:"appointments"`
}

type PatientFields struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Weight     string `json:"weight"`
	Height     string `json:"height"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	BloodGroup string `json:"bloodGroup"`
}

type PatientAddPayload struct {
	PatientFields
	Appointments []string `json:"appointments"`
}

type PatientUpdatePayload struct {
	ID string `json:"_id"`
	PatientFields
}

func (f *PatientForm) fields() PatientFields {
	return PatientFields{
		Name:       f.Name,
		Age:        f.Age,
		Weight:     f.Weight,
		Height:     f.Height,
		Contact:    f.Contact,
		Email:      f.Email,
		Address:    f.Address,
		Gender:     f.Gender,
		BloodGroup: f.BloodGroup,
	}
}

func (f *PatientForm) AddPayload() *PatientAddPayload {
	appointments := []string{}
	for _, appointment := range strings.Split(f.Appointments, ",") {
		if appointment = strings.TrimSpace(appointment); appointment != "" {
			appointments = append(appointments, appointment)
		}
	}
	return &PatientAddPayload{
		PatientFields: f.fields(),
		Appointments:  appointments,
	}
}

func (f *PatientForm) UpdatePayload() *PatientUpdatePayload {
	return &PatientUpdatePayload{
		ID:            f.ID,
		PatientFields: f.fields(),
	}
}

func (f *PatientForm) DeletePayload() *DeletePayload {
	return &DeletePayload{
		ID:    f.ID,
		Name:  f.Name,
		Email: f.Email,
	}
}

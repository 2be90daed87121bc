package requests

import "hms-console/internal/pkg/constvars"

type StaffForm struct {
	ID             string `form:"id"`
	Name           string `form:"name"`
	Position       string `form:"position" validate:"staff_position"`
	Age            string `form:"age"`
	Email          string `form:"email"`
	Password       string `form:"password"`
	Contact        string `form:"contact"`
	Address        string `form:"address"`
	Experience     string `form:"experience"`
	Education      string `form:"education"`
	Shift          string `form:"shift"`
	Gender         string `form:"gender"`
	Department     string `form:"department"`
	Specialization string `form:"specialization"`
	AssignedDoctor string `form:"assignedDoctor"`
}

// StaffFields uses the hospital API's field names. Exactly one of
// Specialization and AssignedDoctor is set, depending on the position.
type StaffFields struct {
	Name            string  `json:"name"`
	Age             string  `json:"age"`
	Email           string  `json:"email"`
	Password        string  `json:"password,omitempty"`
	ContactNumber   string  `json:"contact_number"`
	Address         string  `json:"address"`
	ExperienceYears string  `json:"experience_years"`
	Education       string  `json:"education"`
	Shift           string  `json:"shift"`
	Gender          string  `json:"gender"`
	Department      string  `json:"department"`
	Specialization  *string `json:"specialization,omitempty"`
	AssignedDoctor  *string `json:"assignedDoctor,omitempty"`
}

type StaffUpdatePayload struct {
	ID string `json:"_id"`
	StaffFields
}

// Fields builds the payload body for the given canonical position.
func (f *StaffForm) Fields(position string) StaffFields {
	fields := StaffFields{
		Name:            f.Name,
		Age:             f.Age,
		Email:           f.Email,
		Password:        f.Password,
		ContactNumber:   f.Contact,
		Address:         f.Address,
		ExperienceYears: f.Experience,
		Education:       f.Education,
		Shift:           f.Shift,
		Gender:          f.Gender,
		Department:      f.Department,
	}
	switch position {
	case constvars.PositionDoctor:
		specialization := f.Specialization
		fields.Specialization = &specialization
	case constvars.PositionNurse:
		assignedDoctor := f.AssignedDoctor
		fields.AssignedDoctor = &assignedDoctor
	}
	return fields
}

func (f *StaffForm) AddPayload(position string) *StaffFields {
	fields := f.Fields(position)
	return &fields
}

func (f *StaffForm) UpdatePayload(position string) *StaffUpdatePayload {
	return &StaffUpdatePayload{
		ID:          f.ID,
		StaffFields: f.Fields(position),
	}
}

func (f *StaffForm) DeletePayload() *DeletePayload {
	return &DeletePayload{
		ID:    f.ID,
		Name:  f.Name,
		Email: f.Email,
	}
}

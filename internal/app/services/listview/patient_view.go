package listview

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"strconv"

	"go.uber.org/zap"
)

var PatientDefinition = Definition[models.Patient]{
	Resource: constvars.ResourcePatients,
	Fields: map[string]func(models.Patient) string{
		"id":           func(p models.Patient) string { return p.ID },
		"name":         func(p models.Patient) string { return p.Name },
		"age":          func(p models.Patient) string { return p.Age },
		"weight":       func(p models.Patient) string { return p.Weight },
		"height":       func(p models.Patient) string { return p.Height },
		"contact":      func(p models.Patient) string { return p.Contact },
		"email":        func(p models.Patient) string { return p.Email },
		"address":      func(p models.Patient) string { return p.Address },
		"gender":       func(p models.Patient) string { return p.Gender },
		"bloodGroup":   func(p models.Patient) string { return p.BloodGroup },
		"appointments": func(p models.Patient) string { return p.Appointments.String() },
	},
	SortKeys: map[string]func(models.Patient) string{
		"appointments": func(p models.Patient) string { return strconv.Itoa(len(p.Appointments)) },
	},
	FilterFields: []string{"name", "id"},
	DefaultSort:  SortSpec{Field: "name"},
}

func NewPatientView(st *store.Store, logger *zap.Logger) *Controller[models.Patient] {
	view := NewController(PatientDefinition, st.Patients, logger)
	view.Attach(st)
	return view
}

package listview

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"

	"go.uber.org/zap"
)

var staffFields = map[string]func(models.Staff) string{
	"id":             func(s models.Staff) string { return s.ID },
	"name":           func(s models.Staff) string { return s.Name },
	"position":       func(s models.Staff) string { return s.Position },
	"specialization": func(s models.Staff) string { return s.Specialization },
	"assignedDoctor": func(s models.Staff) string { return s.AssignedDoctor },
	"department":     func(s models.Staff) string { return s.Department },
	"contact":        func(s models.Staff) string { return s.Contact },
	"email":          func(s models.Staff) string { return s.Email },
	"address":        func(s models.Staff) string { return s.Address },
	"experience":     func(s models.Staff) string { return s.Experience },
	"age":            func(s models.Staff) string { return s.Age },
	"gender":         func(s models.Staff) string { return s.Gender },
	"education":      func(s models.Staff) string { return s.Education },
	"shift":          func(s models.Staff) string { return s.Shift },
}

// StaffDefinition describes the doctors or the nurses list.
func StaffDefinition(resource constvars.Resource) Definition[models.Staff] {
	return Definition[models.Staff]{
		Resource:     resource,
		Fields:       staffFields,
		FilterFields: []string{"name", "id"},
		DefaultSort:  SortSpec{Field: "name"},
	}
}

func NewStaffView(st *store.Store, resource constvars.Resource, logger *zap.Logger) *Controller[models.Staff] {
	view := NewController(StaffDefinition(resource), func() []models.Staff {
		return st.Staff(resource)
	}, logger)
	view.Attach(st)
	return view
}

package listview

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"strconv"

	"go.uber.org/zap"
)

var DepartmentDefinition = Definition[models.Department]{
	Resource: constvars.ResourceDepartments,
	Fields: map[string]func(models.Department) string{
		"index":        func(d models.Department) string { return d.Index },
		"name":         func(d models.Department) string { return d.Name },
		"staffs":       func(d models.Department) string { return strconv.Itoa(d.Staffs) },
		"appointments": func(d models.Department) string { return strconv.Itoa(d.Appointments) },
	},
	FilterFields: []string{"name", "index"},
	DefaultSort:  SortSpec{Field: "index"},
}

func NewDepartmentView(st *store.Store, logger *zap.Logger) *Controller[models.Department] {
	view := NewController(DepartmentDefinition, st.Departments, logger)
	view.Attach(st)
	return view
}

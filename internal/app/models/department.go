package models

type Department struct {
	Index        string `json:"index"`
	Name         string `json:"name"`
	Staffs       int    `json:"staffs"`
	Appointments int    `json:"appointments"`
}

func (d Department) Key() string { return d.Index }

// DefaultDepartments returns a fresh copy of the department catalogue.
func DefaultDepartments() []Department {
	return []Department{
		{Index: "DEPT01", Name: "Cardiology", Staffs: 20, Appointments: 150},
		{Index: "DEPT02", Name: "Neurology", Staffs: 15, Appointments: 120},
		{Index: "DEPT03", Name: "Orthopedics", Staffs: 18, Appointments: 130},
		{Index: "DEPT04", Name: "Pediatrics", Staffs: 25, Appointments: 170},
		{Index: "DEPT05", Name: "Dermatology", Staffs: 12, Appointments: 100},
		{Index: "DEPT06", Name: "Oncology", Staffs: 22, Appointments: 160},
		{Index: "DEPT07", Name: "Gynecology", Staffs: 17, Appointments: 140},
	}
}

package models

// Staff is discriminated by Position. Doctors carry Specialization and nurses carry
// AssignedDoctor; the field of the other variant holds the placeholder.
type Staff struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Specialization string `json:"specialization"`
	AssignedDoctor string `json:"assignedDoctor"`
	Department     string `json:"department"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Experience     string `json:"experience"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	Education      string `json:"education"`
	Shift          string `json:"shift"`
}

func (s Staff) Key() string { return s.ID }

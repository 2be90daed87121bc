package submitter

import (
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
)

// SelectPatient finds a patient by exact id, then by exact name.
func SelectPatient(patients []models.Patient, key string) (models.Patient, bool) {
	if key == "" {
		return models.Patient{}, false
	}
	for _, patient := range patients {
		if patient.ID == key {
			return patient, true
		}
	}
	for _, patient := range patients {
		if patient.Name == key {
			return patient, true
		}
	}
	return models.Patient{}, false
}

func SelectDoctor(doctors []models.Staff, id string) (models.Staff, bool) {
	for _, doctor := range doctors {
		if id != "" && doctor.ID == id {
			return doctor, true
		}
	}
	return models.Staff{}, false
}

// DoctorDepartments lists the distinct departments of doctors in the order
// they first appear.
func DoctorDepartments(doctors []models.Staff) []string {
	seen := make(map[string]struct{})
	departments := []string{}
	for _, doctor := range doctors {
		if doctor.Department == "" || doctor.Department == constvars.Placeholder {
			continue
		}
		if _, ok := seen[doctor.Department]; ok {
			continue
		}
		seen[doctor.Department] = struct{}{}
		departments = append(departments, doctor.Department)
	}
	return departments
}

func DoctorsInDepartment(doctors []models.Staff, department string) []models.Staff {
	matched := []models.Staff{}
	for _, doctor := range doctors {
		if doctor.Department == department {
			matched = append(matched, doctor)
		}
	}
	return matched
}

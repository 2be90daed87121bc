package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	PatientAddedSuccess       = "Patient added successfully"
	PatientUpdatedSuccess     = "Details updated successfully"
	PatientDeletedSuccess     = "Patient deleted successfully"
	StaffAddedSuccessFormat   = "%s added successfully"
	StaffUpdatedSuccess       = "Details updated successfully"
	StaffDeletedSuccess       = "Staff deleted successfully"
	AppointmentAddedSuccess   = "Appointment scheduled successfully"
	GetListViewSuccessMessage = "list view loaded"
	GetNotificationsSuccess   = "notifications drained"
	GetDepartmentsSuccess     = "departments loaded"
)

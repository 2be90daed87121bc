package constvars

// Resource names the four remote collections. The value doubles as the
// array field of the read envelope.
type Resource string

const (
	ResourcePatients     Resource = "patients"
	ResourceDoctors      Resource = "doctors"
	ResourceNurses       Resource = "nurses"
	ResourceAppointments Resource = "appointments"
	ResourceDepartments  Resource = "departments"
)

// RemoteResources are the collections fetched from the hospital API.
var RemoteResources = []Resource{
	ResourcePatients,
	ResourceDoctors,
	ResourceNurses,
	ResourceAppointments,
}

const (
	EndpointPatients     = "/patients/"
	EndpointDoctors      = "/doctor/"
	EndpointNurses       = "/nurse/"
	EndpointAppointments = "/appointment/"

	EndpointPatientAdd    = "/patients/add"
	EndpointPatientUpdate = "/patients/update"
	EndpointPatientDelete = "/patients/delete"

	EndpointDoctorAdd    = "/doctor/add"
	EndpointDoctorUpdate = "/doctor/update"
	EndpointDoctorDelete = "/doctor/delete"

	EndpointNurseAdd    = "/nurse/add"
	EndpointNurseUpdate = "/nurse/update"
	EndpointNurseDelete = "/nurse/delete"

	EndpointAppointmentAdd = "/appointment/add"
)

// CollectionEndpoints maps each remote collection to its list endpoint.
var CollectionEndpoints = map[Resource]string{
	ResourcePatients:     EndpointPatients,
	ResourceDoctors:      EndpointDoctors,
	ResourceNurses:       EndpointNurses,
	ResourceAppointments: EndpointAppointments,
}

// RecordKeys maps each collection to the key a write response uses for the
// created record.
var RecordKeys = map[Resource]string{
	ResourcePatients:     "patient",
	ResourceDoctors:      "doctor",
	ResourceNurses:       "nurse",
	ResourceAppointments: "appointment",
}

const (
	EnvelopeStatusSuccess = "success"
	EnvelopeStatusKey     = "status"
	EnvelopeMessageKey    = "message"
)

const (
	PositionDoctor = "Doctor"
	PositionNurse  = "Nurse"
)

const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	// Placeholder stands in for every missing display value.
	Placeholder = "N/A"

	AppointmentTimeLayout      = "2006-01-02 15:04:05"
	AppointmentInputTimeLayout = "2006-01-02T15:04"
)

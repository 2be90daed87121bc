package requests

import "hms-console/internal/pkg/constvars"

// HMSWrite describes one write against the hospital API.
type HMSWrite struct {
	Resource constvars.Resource
	Action   string
	Method   string
	Endpoint string
	Payload  interface{}
}

type DeletePayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListView is the payload of every list endpoint of the console API.
type ListView struct {
	Query string      `json:"query"`
	Sort  string      `json:"sort"`
	Order string      `json:"order"`
	Total int         `json:"total"`
	Rows  interface{} `json:"rows"`
}

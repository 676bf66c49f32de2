package dto

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Kind    string   `json:"kind,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

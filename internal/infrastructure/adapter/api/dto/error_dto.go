package dto

// ErrorResponse is the notification shown for a failed request
type ErrorResponse struct {
	Code     int    `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// StatusResponse is a bare status answer, such as the loading placeholder
type StatusResponse struct {
	Status string `json:"status"`
}

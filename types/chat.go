package types

type ChatRequest struct {
	Message   string   `json:"message"`
	Context   string   `json:"context,omitempty"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

type ErrorResponse struct {
	ErrorMessage string `json:"error"`
	RequestID    string `json:"request_id,omitempty"`
}

package handler

import "github.com/avc-dev/link-registry/internal/usecase"

type CreateLinkRequest struct {
	OriginalURL string `json:"original_url"`
	Code        string `json:"code,omitempty"`
	CustomName  string `json:"custom_name,omitempty"`
}

type CreateLinkResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	ShortURL string `json:"shortUrl"`
}

type VisitResponse struct {
	Success bool `json:"success"`
}

type ExportResponse struct {
	CSVURL string `json:"csvUrl"`
}

type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []usecase.FieldError `json:"fields,omitempty"`
}

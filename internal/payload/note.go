package payload

type CreateNoteRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Content     string   `json:"content"     validate:"required"`
	Subject     string   `json:"subject"`
	Tags        []string `json:"tags"`
	ResourceURL string   `json:"resourceUrl" validate:"omitempty,url"`
	Status      string   `json:"status"`
}

// UpdateNoteRequest enumerates exactly the mutable note fields. Absent
// fields are left untouched.
type UpdateNoteRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,min=1"`
	Content     *string   `json:"content"     validate:"omitempty,min=1"`
	Subject     *string   `json:"subject"`
	Tags        *[]string `json:"tags"`
	ResourceURL *string   `json:"resourceUrl" validate:"omitempty,url"`
	Status      *string   `json:"status"`
}

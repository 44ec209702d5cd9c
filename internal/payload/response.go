package payload

import "github.com/brainbin-app/brainbin-api/internal/model"

// Response is the uniform envelope of every Brainbin API response. Clients
// inspect the success flag rather than relying on status codes alone.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserData is the profile shape returned by GET /api/user/data.
type UserData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

type UserDataResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	UserData UserData `json:"userData"`
}

type NoteResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Note    *model.Note `json:"note,omitempty"`
}

type NotesResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Notes   []*model.Note `json:"notes"`
}

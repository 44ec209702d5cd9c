// Package client provides a Go client for the Brainbin API plus the
// dashboard view state the web frontend keeps on top of fetched notes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// APIError is returned when the server answers with a {success:false}
// envelope. StatusCode carries the transport status; Message is the
// user-facing text from the payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brainbin: %s (status %d)", e.Message, e.StatusCode)
}

// Note mirrors the note record returned by the API.
type Note struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Subject     string    `json:"subject"`
	Tags        []string  `json:"tags"`
	ResourceURL string    `json:"resourceUrl"`
	Status      string    `json:"status"`
	IsStarred   bool      `json:"isStarred"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserData mirrors the profile returned by GET /api/user/data.
type UserData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// NoteFields carries the mutable note fields for create and update calls.
type NoteFields struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Subject     string   `json:"subject,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ResourceURL string   `json:"resourceUrl,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// Client talks to a Brainbin API. The session cookie issued at login or
// registration lives in the client's cookie jar, so subsequent calls are
// authenticated automatically.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Note     *Note           `json:"note"`
	Notes    []Note          `json:"notes"`
	UserData json.RawMessage `json:"userData"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return nil, err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// Register creates an account and stores the issued session cookie.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	return err
}

// Login authenticates and stores the issued session cookie.
func (c *Client) Login(ctx context.Context, email, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	return err
}

// Logout clears the server-side cookie. Local jar state expires with it.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

// IsAuth reports whether the stored session is still accepted.
func (c *Client) IsAuth(ctx context.Context) (bool, error) {
	_, err := c.do(ctx, http.MethodGet, "/api/auth/is-auth", nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UserData fetches the caller's profile.
func (c *Client) UserData(ctx context.Context) (*UserData, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/user/data", nil)
	if err != nil {
		return nil, err
	}

	var data UserData
	if err := json.Unmarshal(env.UserData, &data); err != nil {
		return nil, fmt.Errorf("decoding user data: %w", err)
	}

	return &data, nil
}

// SendVerifyOTP asks the server to email a verification code.
func (c *Client) SendVerifyOTP(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/send-verify-otp", nil)
	return err
}

// VerifyEmail submits the emailed verification code.
func (c *Client) VerifyEmail(ctx context.Context, otp string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/verify-email", map[string]string{"otp": otp})
	return err
}

// SendResetOTP asks the server to email a password reset code.
func (c *Client) SendResetOTP(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/send-reset-otp", map[string]string{"email": email})
	return err
}

// ResetPassword completes the reset flow with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	})
	return err
}

// CreateNote persists a new note and returns the stored record.
func (c *Client) CreateNote(ctx context.Context, fields NoteFields) (*Note, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/note/create", fields)
	if err != nil {
		return nil, err
	}
	return env.Note, nil
}

// MyNotes fetches all of the caller's notes, most recently updated first.
func (c *Client) MyNotes(ctx context.Context) ([]Note, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/note/my-notes", nil)
	if err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// UpdateNote replaces the mutable fields of a note and returns the updated
// record.
func (c *Client) UpdateNote(ctx context.Context, id string, fields NoteFields) (*Note, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/note/update/"+id, fields)
	if err != nil {
		return nil, err
	}
	return env.Note, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/note/delete/"+id, nil)
	return err
}

// ToggleStar flips the starred flag and returns the updated record.
func (c *Client) ToggleStar(ctx context.Context, id string) (*Note, error) {
	env, err := c.do(ctx, http.MethodPatch, "/api/note/star/"+id, nil)
	if err != nil {
		return nil, err
	}
	return env.Note, nil
}

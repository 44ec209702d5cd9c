package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newFakeAPI serves a minimal slice of the API: login issues a session
// cookie, and the note endpoints demand it.
func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Password != "correct-horse" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Invalid email or password",
			})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-1", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Login successful"})
	})

	requireSession := func(r *http.Request) bool {
		cookie, err := r.Cookie("token")
		return err == nil && cookie.Value == "session-1"
	}

	mux.HandleFunc("GET /api/auth/is-auth", func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Not authorized. Login again",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "User is authenticated"})
	})

	mux.HandleFunc("GET /api/note/my-notes", func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Not authorized. Login again",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"notes": []map[string]any{
				{"id": "n1", "title": "First", "tags": []string{"a", "b"}, "status": "Concepts"},
			},
		})
	})

	mux.HandleFunc("POST /api/note/create", func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Not authorized. Login again",
			})
			return
		}

		var fields NoteFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Note created",
			"note": map[string]any{
				"id":      "n2",
				"title":   fields.Title,
				"content": fields.Content,
				"status":  "Concepts",
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSessionCookiePersists(t *testing.T) {
	srv := newFakeAPI(t)
	ctx := context.Background()

	c, err := New(srv.URL)
	require.NoError(t, err)

	// unauthenticated calls are rejected
	_, err = c.MyNotes(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Not authorized. Login again", apiErr.Message)

	require.NoError(t, c.Login(ctx, "alice@example.com", "correct-horse"))

	// cookie from login carries over to subsequent calls
	notes, err := c.MyNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "First", notes[0].Title)
	assert.Equal(t, []string{"a", "b"}, notes[0].Tags)
}

func TestClientLoginFailure(t *testing.T) {
	srv := newFakeAPI(t)
	ctx := context.Background()

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.Login(ctx, "alice@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestClientIsAuth(t *testing.T) {
	srv := newFakeAPI(t)
	ctx := context.Background()

	c, err := New(srv.URL)
	require.NoError(t, err)

	ok, err := c.IsAuth(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "no session yet")

	require.NoError(t, c.Login(ctx, "alice@example.com", "correct-horse"))

	ok, err = c.IsAuth(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClientCreateNote(t *testing.T) {
	srv := newFakeAPI(t)
	ctx := context.Background()

	c, err := New(srv.URL)
	require.NoError(t, err)
	require.NoError(t, c.Login(ctx, "alice@example.com", "correct-horse"))

	note, err := c.CreateNote(ctx, NoteFields{Title: "T1", Content: "C1"})
	require.NoError(t, err)
	assert.Equal(t, "n2", note.ID)
	assert.Equal(t, "T1", note.Title)
	assert.Equal(t, "Concepts", note.Status)
}

func TestClientAPIErrorString(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, Message: "Note not found or unauthorized"}
	assert.Equal(t, "brainbin: Note not found or unauthorized (status 404)", err.Error())
}

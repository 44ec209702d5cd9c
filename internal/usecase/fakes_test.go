package usecase

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/brainbin-app/brainbin-api/internal/mailer"
	"github.com/brainbin-app/brainbin-api/internal/model"
	"github.com/brainbin-app/brainbin-api/internal/repository"
)

// duplicateKeyErr satisfies mongo.IsDuplicateKeyError.
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000}},
}

// fakeUserRepo is an in-memory UserRepository with a unique email rule.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, duplicateKeyErr
		}
	}

	user.ID = bson.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	f.users[user.ID.Hex()] = &copied
	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Verified != nil {
		user.Verified = *params.Verified
	}
	if params.VerifyOTP != nil {
		user.VerifyOTP = *params.VerifyOTP
	}
	if params.VerifyOTPExpiresAt != nil {
		user.VerifyOTPExpiresAt = *params.VerifyOTPExpiresAt
	}
	if params.ResetOTP != nil {
		user.ResetOTP = *params.ResetOTP
	}
	if params.ResetOTPExpiresAt != nil {
		user.ResetOTPExpiresAt = *params.ResetOTPExpiresAt
	}
	user.UpdatedAt = time.Now()

	copied := *user
	return &copied, nil
}

// setOTP mutates stored OTP fields directly, bypassing the usecase, to
// simulate arbitrary expiry states.
func (f *fakeUserRepo) setVerifyOTP(id, otp string, expiresAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id].VerifyOTP = otp
	f.users[id].VerifyOTPExpiresAt = expiresAt
}

func (f *fakeUserRepo) setResetOTP(id, otp string, expiresAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id].ResetOTP = otp
	f.users[id].ResetOTPExpiresAt = expiresAt
}

// fakeSender records sent emails on a channel so asynchronous sends can be
// awaited.
type fakeSender struct {
	sent chan mailer.Email
	err  error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan mailer.Email, 8)}
}

func (f *fakeSender) Send(email mailer.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent <- email
	return nil
}

// fakeNoteRepo is an in-memory NoteRepository enforcing the ownership rule.
type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*model.Note{}}
}

func (f *fakeNoteRepo) CreateNote(_ context.Context, note *model.Note) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note.ID = bson.NewObjectID()
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	copied := *note
	f.notes[note.ID.Hex()] = &copied
	return note, nil
}

func (f *fakeNoteRepo) ListNotesByOwner(_ context.Context, ownerID string) ([]*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	notes := []*model.Note{}
	for _, note := range f.notes {
		if note.UserID.Hex() == ownerID {
			copied := *note
			notes = append(notes, &copied)
		}
	}

	// updated_at descending, matching the mongo sort
	for i := 0; i < len(notes); i++ {
		for j := i + 1; j < len(notes); j++ {
			if notes[j].UpdatedAt.After(notes[i].UpdatedAt) {
				notes[i], notes[j] = notes[j], notes[i]
			}
		}
	}

	return notes, nil
}

func (f *fakeNoteRepo) UpdateNote(
	_ context.Context,
	ownerID, id string,
	params repository.UpdateNoteParams,
) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, err := f.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.Subject != nil {
		note.Subject = *params.Subject
	}
	if params.Tags != nil {
		note.Tags = *params.Tags
	}
	if params.ResourceURL != nil {
		note.ResourceURL = *params.ResourceURL
	}
	if params.Status != nil {
		note.Status = *params.Status
	}
	note.UpdatedAt = time.Now()

	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) DeleteNote(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.owned(ownerID, id); err != nil {
		return err
	}

	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) ToggleStar(_ context.Context, ownerID, id string) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, err := f.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	note.IsStarred = !note.IsStarred
	note.UpdatedAt = time.Now()

	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) owned(ownerID, id string) (*model.Note, error) {
	note, ok := f.notes[id]
	if !ok || note.UserID.Hex() != ownerID {
		return nil, mongo.ErrNoDocuments
	}
	return note, nil
}

package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/brainbin-app/brainbin-api/internal/model"
	"github.com/brainbin-app/brainbin-api/internal/repository"
)

// NoteUsecase defines the business logic for note operations. Every
// operation is scoped to the owner id resolved from the session.
type NoteUsecase interface {
	Create(ctx context.Context, ownerID string, params CreateNoteParams) (*model.Note, error)
	ListMine(ctx context.Context, ownerID string) ([]*model.Note, error)
	Update(ctx context.Context, ownerID, noteID string, params repository.UpdateNoteParams) (*model.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	ToggleStar(ctx context.Context, ownerID, noteID string) (*model.Note, error)
}

// CreateNoteParams defines the parameters for creating a note.
type CreateNoteParams struct {
	Title       string
	Content     string
	Subject     string
	Tags        []string
	ResourceURL string
	Status      string
}

var (
	ErrNoteNotFound  = errors.New("note not found or unauthorized")
	ErrInvalidStatus = errors.New("invalid note status")
)

type noteUsecase struct {
	noteRepo repository.NoteRepository
}

func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{noteRepo: noteRepo}
}

func (u *noteUsecase) Create(ctx context.Context, ownerID string, params CreateNoteParams) (*model.Note, error) {
	ownerObjectID, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	status := params.Status
	if status == "" {
		status = model.StatusConcepts
	}
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	note := &model.Note{
		UserID:      ownerObjectID,
		Title:       params.Title,
		Content:     params.Content,
		Subject:     params.Subject,
		Tags:        params.Tags,
		ResourceURL: params.ResourceURL,
		Status:      status,
	}

	return u.noteRepo.CreateNote(ctx, note)
}

func (u *noteUsecase) ListMine(ctx context.Context, ownerID string) ([]*model.Note, error) {
	return u.noteRepo.ListNotesByOwner(ctx, ownerID)
}

func (u *noteUsecase) Update(
	ctx context.Context,
	ownerID, noteID string,
	params repository.UpdateNoteParams,
) (*model.Note, error) {
	if params.Status != nil && !model.ValidStatus(*params.Status) {
		return nil, ErrInvalidStatus
	}

	note, err := u.noteRepo.UpdateNote(ctx, ownerID, noteID, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoteNotFound
		}

		return nil, err
	}

	return note, nil
}

func (u *noteUsecase) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := u.noteRepo.DeleteNote(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoteNotFound
		}

		return err
	}

	return nil
}

func (u *noteUsecase) ToggleStar(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	note, err := u.noteRepo.ToggleStar(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoteNotFound
		}

		return nil, err
	}

	return note, nil
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/brainbin-app/brainbin-api/internal/handler/respond"
	"github.com/brainbin-app/brainbin-api/internal/middleware"
	"github.com/brainbin-app/brainbin-api/internal/payload"
	"github.com/brainbin-app/brainbin-api/internal/repository"
	"github.com/brainbin-app/brainbin-api/internal/usecase"
	"github.com/brainbin-app/brainbin-api/internal/validation"
)

const noteNotFoundMessage = "Note not found or unauthorized"

// NoteHandler serves the /api/note endpoints. All routes sit behind the
// session gate, so the owner id is always present on the context.
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
}

func NewNoteHandler(
	noteUsecase usecase.NoteUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateNoteRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	note, err := h.noteUsecase.Create(r.Context(), middleware.UserID(r.Context()), usecase.CreateNoteParams{
		Title:       req.Title,
		Content:     req.Content,
		Subject:     req.Subject,
		Tags:        req.Tags,
		ResourceURL: req.ResourceURL,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			respond.Failure(w, http.StatusBadRequest, "Invalid note status")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create note")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.JSON(w, http.StatusOK, payload.NoteResponse{Success: true, Message: "Note created", Note: note})
}

func (h *NoteHandler) MyNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteUsecase.ListMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list notes")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.JSON(w, http.StatusOK, payload.NotesResponse{Success: true, Notes: notes})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateNoteRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	note, err := h.noteUsecase.Update(
		r.Context(),
		middleware.UserID(r.Context()),
		chi.URLParam(r, "id"),
		repository.UpdateNoteParams{
			Title:       req.Title,
			Content:     req.Content,
			Subject:     req.Subject,
			Tags:        req.Tags,
			ResourceURL: req.ResourceURL,
			Status:      req.Status,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoteNotFound):
			respond.Failure(w, http.StatusNotFound, noteNotFoundMessage)
		case errors.Is(err, usecase.ErrInvalidStatus):
			respond.Failure(w, http.StatusBadRequest, "Invalid note status")
		default:
			h.logger.Error().Err(err).Msg("failed to update note")
			respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	respond.JSON(w, http.StatusOK, payload.NoteResponse{Success: true, Message: "Note updated", Note: note})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.noteUsecase.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			respond.Failure(w, http.StatusNotFound, noteNotFoundMessage)
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete note")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.Success(w, "Note deleted")
}

func (h *NoteHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	note, err := h.noteUsecase.ToggleStar(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			respond.Failure(w, http.StatusNotFound, noteNotFoundMessage)
			return
		}

		h.logger.Error().Err(err).Msg("failed to toggle star")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.JSON(w, http.StatusOK, payload.NoteResponse{Success: true, Note: note})
}

func (h *NoteHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.Failure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Failure(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/brainbin-app/brainbin-api/internal/handler/respond"
	"github.com/brainbin-app/brainbin-api/internal/middleware"
	"github.com/brainbin-app/brainbin-api/internal/payload"
	"github.com/brainbin-app/brainbin-api/internal/usecase"
)

// UserHandler serves the /api/user endpoints.
type UserHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *zerolog.Logger
}

func NewUserHandler(authUsecase usecase.AuthUsecase, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

func (h *UserHandler) Data(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respond.Failure(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get user data")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.JSON(w, http.StatusOK, payload.UserDataResponse{
		Success: true,
		UserData: payload.UserData{
			Name:       user.Name,
			Email:      user.Email,
			IsVerified: user.Verified,
		},
	})
}

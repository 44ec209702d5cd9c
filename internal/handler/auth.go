package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brainbin-app/brainbin-api/internal/config"
	"github.com/brainbin-app/brainbin-api/internal/handler/respond"
	"github.com/brainbin-app/brainbin-api/internal/middleware"
	"github.com/brainbin-app/brainbin-api/internal/payload"
	"github.com/brainbin-app/brainbin-api/internal/usecase"
	"github.com/brainbin-app/brainbin-api/internal/validation"
)

const internalErrorMessage = "something went wrong"

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
	cfg         *config.Config
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			respond.Failure(w, http.StatusConflict, "User already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	h.setSessionCookie(w, token)
	respond.Success(w, "Registration successful")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			respond.Failure(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	h.setSessionCookie(w, token)
	respond.Success(w, "Login successful")
}

// Logout clears the session cookie unconditionally. The token itself is
// stateless and expires on its own.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.clearSessionCookie(w)
	respond.Success(w, "Logged out")
}

func (h *AuthHandler) SendVerifyOTP(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	err := h.authUsecase.SendVerifyOTP(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respond.Failure(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrAlreadyVerified):
			respond.Failure(w, http.StatusConflict, "Account already verified")
		default:
			h.logger.Error().Err(err).Msg("failed to send verification OTP")
			respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	respond.Success(w, "OTP sent to email")
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req payload.VerifyEmailRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	userID := middleware.UserID(r.Context())

	err := h.authUsecase.VerifyEmail(r.Context(), userID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respond.Failure(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrAlreadyVerified):
			respond.Failure(w, http.StatusConflict, "Account already verified")
		case errors.Is(err, usecase.ErrInvalidOTP):
			respond.Failure(w, http.StatusUnauthorized, "Invalid OTP")
		case errors.Is(err, usecase.ErrOTPExpired):
			respond.Failure(w, http.StatusUnauthorized, "OTP expired")
		default:
			h.logger.Error().Err(err).Msg("failed to verify email")
			respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	respond.Success(w, "Email verified successfully")
}

// IsAuthenticated only answers behind the session gate, so reaching it means
// the caller holds a valid token.
func (h *AuthHandler) IsAuthenticated(w http.ResponseWriter, _ *http.Request) {
	respond.Success(w, "User is authenticated")
}

func (h *AuthHandler) SendResetOTP(w http.ResponseWriter, r *http.Request) {
	var req payload.SendResetOTPRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.authUsecase.SendResetOTP(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respond.Failure(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to send reset OTP")
		respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond.Success(w, "OTP sent to your email")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ResetPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.authUsecase.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respond.Failure(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrInvalidOTP):
			respond.Failure(w, http.StatusUnauthorized, "Invalid OTP")
		case errors.Is(err, usecase.ErrOTPExpired):
			respond.Failure(w, http.StatusUnauthorized, "OTP expired")
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			respond.Failure(w, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	respond.Success(w, "Password has been reset successfully")
}

func (h *AuthHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
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

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.Token.ExpiresIn / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/brainbin-app/brainbin-api/internal/auth"
	"github.com/brainbin-app/brainbin-api/internal/config"
	"github.com/brainbin-app/brainbin-api/internal/mailer"
	"github.com/brainbin-app/brainbin-api/internal/model"
	"github.com/brainbin-app/brainbin-api/internal/repository"
	"github.com/brainbin-app/brainbin-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, params LoginParams) (*model.User, string, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	SendVerifyOTP(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, userID, otp string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrOTPExpired         = errors.New("OTP expired")
)

// EmailSender sends a single email. Satisfied by *mailer.Mailer.
type EmailSender interface {
	Send(email mailer.Email) error
}

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	mailer   EmailSender
	logger   *zerolog.Logger
	cfg      *config.Config
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	emailSender EmailSender,
	logger *zerolog.Logger,
	cfg *config.Config,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		mailer:   emailSender,
		logger:   logger,
		cfg:      cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", ErrUserAlreadyExists
		}

		return nil, "", err
	}

	token, err := u.jwtAuth.GenerateSessionToken(user.ID.Hex(), u.cfg.Token.Secret, u.cfg.Token.ExpiresIn)
	if err != nil {
		return nil, "", err
	}

	// The welcome email never blocks or fails the registration response.
	go func() {
		email := mailer.WelcomeEmail(user.Name)
		email.To = []string{user.Email}
		if err := u.mailer.Send(email); err != nil {
			u.logger.Error().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
		}
	}()

	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.jwtAuth.GenerateSessionToken(user.ID.Hex(), u.cfg.Token.Secret, u.cfg.Token.ExpiresIn)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *authUsecase) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (u *authUsecase) SendVerifyOTP(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	if user.Verified {
		return ErrAlreadyVerified
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.cfg.Token.OTPTTL)
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		VerifyOTP:          &otp,
		VerifyOTPExpiresAt: &expiresAt,
	}); err != nil {
		return err
	}

	email := mailer.VerifyOTPEmail(otp)
	email.To = []string{user.Email}

	return u.mailer.Send(email)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, userID, otp string) error {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	if user.Verified {
		return ErrAlreadyVerified
	}

	// Mismatch is checked before expiry so a correct but stale code reports
	// expiry rather than invalidity.
	if user.VerifyOTP == "" || user.VerifyOTP != otp {
		return ErrInvalidOTP
	}

	if time.Now().After(user.VerifyOTPExpiresAt) {
		return ErrOTPExpired
	}

	verified := true
	emptyOTP := ""
	zeroTime := time.Time{}
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		Verified:           &verified,
		VerifyOTP:          &emptyOTP,
		VerifyOTPExpiresAt: &zeroTime,
	}); err != nil {
		return err
	}

	return nil
}

func (u *authUsecase) SendResetOTP(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.cfg.Token.OTPTTL)
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		ResetOTP:          &otp,
		ResetOTPExpiresAt: &expiresAt,
	}); err != nil {
		return err
	}

	message := mailer.ResetOTPEmail(user.Name, otp)
	message.To = []string{user.Email}

	return u.mailer.Send(message)
}

func (u *authUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	if user.ResetOTP == "" || user.ResetOTP != otp {
		return ErrInvalidOTP
	}

	if time.Now().After(user.ResetOTPExpiresAt) {
		return ErrOTPExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	emptyOTP := ""
	zeroTime := time.Time{}
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		PasswordHash:      &passwordHash,
		ResetOTP:          &emptyOTP,
		ResetOTPExpiresAt: &zeroTime,
	}); err != nil {
		return err
	}

	return nil
}

// generateOTP returns a random 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

const resetTokenTTL = 5 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, request request_models.RequestForgotPassword) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.ResetTokenRepository
	notifier   NotifierService
	appBaseURL string
}

func NewAccountService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.ResetTokenRepository,
	notifier NotifierService,
	appBaseURL string,
) AccountServiceInterface {
	return &AccountService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		notifier:   notifier,
		appBaseURL: appBaseURL,
	}
}

// Register creates a reader account. The role is never taken from the
// request; promotions go through role applications.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	if request.Password != request.ConfirmPassword {
		return utils.ErrPasswordMismatch
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     strings.TrimSpace(request.Username),
		Email:        strings.ToLower(strings.TrimSpace(request.Email)),
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		PasswordHash: hashed,
		Role:         db_models.RoleReader,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role), user.IsStaff)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token, Role: string(user.Role)}, nil
}

// ForgotPassword always reports success so the endpoint cannot be used to
// probe which emails exist.
func (a *AccountService) ForgotPassword(ctx context.Context, request request_models.RequestForgotPassword) error {
	user, err := a.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		log.Printf("password reset requested for unknown email")
		return nil
	}

	raw, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	token := &db_models.ResetToken{
		UserID:    user.ID,
		TokenHash: hashResetToken(raw),
		ExpiresAt: time.Now().Add(resetTokenTTL).Unix(),
	}
	if err := a.tokenRepo.Insert(ctx, token); err != nil {
		return utils.ErrDatabaseError
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(a.appBaseURL, "/"), url.QueryEscape(raw))
	a.notifier.NotifyPasswordReset(ctx, user, resetURL)
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	if request.NewPassword != request.ConfirmPassword {
		return utils.ErrPasswordMismatch
	}

	token, err := a.tokenRepo.FindUnusedByHash(ctx, hashResetToken(request.Token))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if token == nil {
		return utils.ErrInvalidResetToken
	}
	if time.Now().Unix() > token.ExpiresAt {
		return utils.ErrResetTokenExpired
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.tokenRepo.ConsumeAndSetPassword(ctx, token.ID, token.UserID, hashed); err != nil {
		return utils.ErrInvalidResetToken
	}
	return nil
}

// Only the sha1 digest of a reset token is stored; a leaked table does not
// leak usable tokens.
func hashResetToken(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

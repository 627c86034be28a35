package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/pkg/utils"
)

func TestRegisterCreatesReader(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()

	err := svc.Register(context.Background(), request_models.SignUpRequest{
		Username:        "alice",
		Email:           "Alice@Example.com",
		FirstName:       "Alice",
		LastName:        "Smith",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := env.userRepo.FindByUsername(context.Background(), "alice")
	if err != nil || user == nil {
		t.Fatalf("user not found after register: %v", err)
	}
	if user.Role != db_models.RoleReader {
		t.Errorf("new account role = %s, want reader", user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	env.createUser(t, "bob", db_models.RoleReader)

	err := svc.Register(context.Background(), request_models.SignUpRequest{
		Username:        "bob2",
		Email:           "bob@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email: got %v, want ErrEmailAlreadyExists", err)
	}

	err = svc.Register(context.Background(), request_models.SignUpRequest{
		Username:        "bob",
		Email:           "other@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	if !errors.Is(err, utils.ErrUsernameTaken) {
		t.Errorf("duplicate username: got %v, want ErrUsernameTaken", err)
	}

	err = svc.Register(context.Background(), request_models.SignUpRequest{
		Username:        "carol",
		Email:           "carol@example.com",
		Password:        "password123",
		ConfirmPassword: "different",
	})
	if !errors.Is(err, utils.ErrPasswordMismatch) {
		t.Errorf("password mismatch: got %v, want ErrPasswordMismatch", err)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	env.createUser(t, "dave", db_models.RoleJournalist)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "dave",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.Role != "journalist" {
		t.Errorf("role = %s, want journalist", resp.Role)
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.Role != "journalist" {
		t.Errorf("claims role = %s, want journalist", claims.Role)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Username: "dave",
		Password: "wrong",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestForgotPasswordStoresHashedToken(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	user := env.createUser(t, "erin", db_models.RoleReader)

	if err := svc.ForgotPassword(context.Background(), request_models.RequestForgotPassword{
		Email: user.Email,
	}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	mails := env.mailer.sentTo(user.Email)
	if len(mails) != 1 {
		t.Fatalf("got %d reset mails, want 1", len(mails))
	}
	raw := extractToken(t, mails[0].Body)

	var tokens []db_models.ResetToken
	if err := env.db.Find(&tokens).Error; err != nil {
		t.Fatalf("loading tokens: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d stored tokens, want 1", len(tokens))
	}
	if tokens[0].TokenHash == raw {
		t.Error("token stored unhashed")
	}
	if tokens[0].TokenHash != hashResetToken(raw) {
		t.Error("stored hash does not match sha1 of the mailed token")
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()

	if err := svc.ForgotPassword(context.Background(), request_models.RequestForgotPassword{
		Email: "ghost@example.com",
	}); err != nil {
		t.Fatalf("ForgotPassword for unknown email: %v", err)
	}
	if len(env.mailer.sent) != 0 {
		t.Errorf("sent %d mails for unknown email, want 0", len(env.mailer.sent))
	}
}

func TestResetPasswordIsSingleUse(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	user := env.createUser(t, "frank", db_models.RoleReader)

	if err := svc.ForgotPassword(context.Background(), request_models.RequestForgotPassword{
		Email: user.Email,
	}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	raw := extractToken(t, env.mailer.sentTo(user.Email)[0].Body)

	req := request_models.ResetPasswordRequest{
		Token:           raw,
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	}
	if err := svc.ResetPassword(context.Background(), req); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	// New password works.
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "frank",
		Password: "newpassword456",
	}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// Second use of the same token fails.
	err := svc.ResetPassword(context.Background(), req)
	if !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Errorf("token reuse: got %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordExpiry(t *testing.T) {
	env := newTestEnv(t)
	svc := env.accountService()
	user := env.createUser(t, "grace", db_models.RoleReader)

	token := &db_models.ResetToken{
		UserID:    user.ID,
		TokenHash: hashResetToken("stale-token"),
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}
	if err := env.db.Create(token).Error; err != nil {
		t.Fatalf("creating token: %v", err)
	}

	err := svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:           "stale-token",
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	})
	if !errors.Is(err, utils.ErrResetTokenExpired) {
		t.Errorf("expired token: got %v, want ErrResetTokenExpired", err)
	}
}

// extractToken pulls the token query parameter out of the reset link in the
// mail body.
func extractToken(t *testing.T, body string) string {
	t.Helper()
	marker := "token="
	idx := strings.Index(body, marker)
	if idx < 0 {
		t.Fatalf("no reset link in body: %q", body)
	}
	token := body[idx+len(marker):]
	if end := strings.IndexAny(token, " \n"); end >= 0 {
		token = token[:end]
	}
	return token
}

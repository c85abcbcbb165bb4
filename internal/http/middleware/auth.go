package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
)

const MinPasswordLength = 8

// is returned when email/password don’t match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialStore finds accounts by login email.
type CredentialStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", errors.New("password must be at least 8 characters")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// Authenticate returns the account for email when plain matches its
// password. Unknown emails and wrong passwords give the same error.
func Authenticate(ctx context.Context, users CredentialStore, email, plain string) (*model.User, error) {
	user, err := users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(user.HashedPassword, plain) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// retrieves *model.User from Gin context (after JWTMiddleware has run).
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	u, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.User)
	return user, ok
}

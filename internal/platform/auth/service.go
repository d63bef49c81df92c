package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nutridash/nutridash/internal/platform/remote"
)

const (
	purposeSession = "session"
	purposeReset   = "password_reset"

	resetTokenTTL = 30 * time.Minute
)

// Claims is the session token payload. Subject carries the account id.
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Session is what a successful sign-in returns.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Account   *Account  `json:"account"`
}

// Service issues and validates HS256 session tokens backed by the
// accounts table. Sign-out and password resets go through the
// in-memory revocation list.
type Service struct {
	accounts AccountRepository
	revoked  *RevocationList
	secret   []byte
	ttl      time.Duration
}

func NewService(accounts AccountRepository, secret string, ttl time.Duration) *Service {
	return &Service{
		accounts: accounts,
		revoked:  NewRevocationList(),
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

func (s *Service) Close() { s.revoked.Close() }

func (s *Service) SignUp(ctx context.Context, name, email, password string) (*Session, error) {
	if name == "" {
		return nil, &remote.ValidationError{Msg: "name is required"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, &remote.ValidationError{Msg: "a valid email is required"}
	}
	if len(password) < 8 {
		return nil, &remote.ValidationError{Msg: "password must be at least 8 characters"}
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, &remote.ValidationError{Msg: "an account with this email already exists"}
	} else if !remote.IsNotFound(err) {
		return nil, &remote.FetchError{Op: "sign up: check email", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	a := &Account{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, &remote.WriteError{Op: "create account", Err: err}
	}
	return s.issueSession(a)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if remote.IsNotFound(err) {
			// Same message as a bad password so the response does not
			// reveal which emails have accounts.
			return nil, &remote.ValidationError{Msg: "invalid email or password"}
		}
		return nil, &remote.FetchError{Op: "sign in: load account", Err: err}
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, &remote.ValidationError{Msg: "invalid email or password"}
	}
	return s.issueSession(a)
}

// SignOut invalidates a single session token. An already invalid token
// is not an error; the session is gone either way.
func (s *Service) SignOut(tokenStr string) {
	claims, err := s.parse(tokenStr, purposeSession)
	if err != nil {
		return
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	s.revoked.Revoke(claims.ID, claims.Subject, exp)
}

// Verify checks a session token and returns its claims.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims, err := s.parse(tokenStr, purposeSession)
	if err != nil {
		return nil, err
	}
	if s.revoked.IsRevoked(claims.ID) {
		return nil, fmt.Errorf("session revoked")
	}
	return claims, nil
}

// ResetPassword issues a short-lived reset token for the account. The
// caller decides how to deliver it. An unknown email returns not-found;
// handlers should not leak that to the client.
func (s *Service) ResetPassword(ctx context.Context, email string) (string, error) {
	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if remote.IsNotFound(err) {
			return "", remote.ErrNotFound
		}
		return "", &remote.FetchError{Op: "reset password: load account", Err: err}
	}
	return s.sign(a, purposeReset, resetTokenTTL)
}

// ConfirmReset sets a new password from a reset token and invalidates
// every tracked session for the account.
func (s *Service) ConfirmReset(ctx context.Context, tokenStr, newPassword string) error {
	if len(newPassword) < 8 {
		return &remote.ValidationError{Msg: "password must be at least 8 characters"}
	}
	claims, err := s.parse(tokenStr, purposeReset)
	if err != nil {
		return &remote.ValidationError{Msg: "invalid or expired reset token"}
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return &remote.ValidationError{Msg: "invalid or expired reset token"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, id, string(hash)); err != nil {
		return &remote.WriteError{Op: "update password", Err: err}
	}

	s.revoked.RevokeAllForAccount(claims.Subject)
	return nil
}

// Account loads the record behind a verified session.
func (s *Service) Account(ctx context.Context, claims *Claims) (*Account, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("bad subject: %w", err)
	}
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, remote.ErrNotFound
		}
		return nil, &remote.FetchError{Op: "load account", Err: err}
	}
	return a, nil
}

func (s *Service) issueSession(a *Account) (*Session, error) {
	tokenStr, err := s.sign(a, purposeSession, s.ttl)
	if err != nil {
		return nil, err
	}
	claims, _ := s.parse(tokenStr, purposeSession)
	s.revoked.Track(claims.ID, a.ID.String())
	return &Session{
		Token:     tokenStr,
		ExpiresAt: claims.ExpiresAt.Time,
		Account:   a,
	}, nil
}

func (s *Service) sign(a *Account, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   a.Email,
		Name:    a.Name,
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(tokenStr, purpose string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("wrong token purpose")
	}
	return claims, nil
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/validators"
)

// Cache is the durable session storage. The redis adapter implements
// it in production; tests use an in-memory map.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Users is the credential source backing login and signup.
type Users interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// Store is the single writer of session state. Everything else reads
// sessions through Restore and the guard.
type Store struct {
	users  Users
	cache  Cache
	secret string
	ttl    time.Duration
}

func NewStore(users Users, cache Cache, secret string, ttl time.Duration) *Store {
	return &Store{
		users:  users,
		cache:  cache,
		secret: secret,
		ttl:    ttl,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

func sessionKey(jti string) string {
	return "session:" + jti
}

func userKey(userID uint) string {
	return fmt.Sprintf("session_user:%d", userID)
}

// ------------------------------
// Login / Signup
// ------------------------------

func (s *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrAuth("invalid_credentials")
	}
	if !user.Active {
		return nil, httperr.ErrAuth("account_inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrAuth("invalid_credentials")
	}

	return s.issue(ctx, user)
}

func (s *Store) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrValidation("email_already_exists")
	}

	if !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrValidation("invalid_email_domain")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Role:         models.RoleCustomer,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(ctx, user)
}

// issue mints the token and caches the profile. A prior session for
// the same user is superseded: at most one valid session per user.
func (s *Store) issue(ctx context.Context, user *models.User) (*Session, error) {
	if old, err := s.cache.Get(ctx, userKey(user.ID)); err == nil && old != "" {
		_ = s.cache.Del(ctx, sessionKey(old))
	}

	jti := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"jti":  jti,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User: Profile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Role:  user.Role,
		},
	}

	payload, err := json.Marshal(sess.User)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sessionKey(jti), string(payload), s.ttl); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, userKey(user.ID), jti, s.ttl); err != nil {
		return nil, err
	}

	return sess, nil
}

// ------------------------------
// Restore / Clear
// ------------------------------

// Restore rehydrates a session from a bearer token. Any malformed or
// expired token clears silently and yields (nil, nil) — a missing
// session, never a crash.
func (s *Store) Restore(ctx context.Context, token string) (*Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		s.Clear(ctx, token)
		return nil, nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		s.Clear(ctx, token)
		return nil, nil
	}

	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if jti == "" || exp == 0 {
		s.Clear(ctx, token)
		return nil, nil
	}

	raw, err := s.cache.Get(ctx, sessionKey(jti))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		// Logged out elsewhere or superseded by a newer login.
		return nil, nil
	}

	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.Clear(ctx, token)
		return nil, nil
	}

	return &Session{
		Token:     token,
		ExpiresAt: time.Unix(int64(exp), 0),
		User:      profile,
	}, nil
}

// UpdateCachedProfile rewrites the cached profile after a profile
// edit, so reads stay current without forcing a re-login. The store
// stays the only writer of session state.
func (s *Store) UpdateCachedProfile(ctx context.Context, token string, p Profile) error {
	sess, err := s.Restore(ctx, token)
	if err != nil || sess == nil {
		return err
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, sessionKey(jti), string(payload), ttl)
}

// Clear erases the cached session for a token. Safe to call with
// garbage input; clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context, token string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}

	keys := []string{sessionKey(jti)}
	if sub, ok := claims["sub"].(float64); ok {
		keys = append(keys, userKey(uint(sub)))
	}
	_ = s.cache.Del(ctx, keys...)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidIdentityToken = errors.New("invalid identity token")
	ErrSessionStore         = errors.New("session store unavailable")
)

// DefaultSessionTTL applies when the configured TTL is not positive.
const DefaultSessionTTL = 8 * time.Hour

// ISessionUseCase replaces ambient login state with an explicit session that
// is created on login, resolved on every request and destroyed on logout.
// Identity tokens are issued by the external auth provider.

type ISessionUseCase interface {
	Open(ctx context.Context, identityToken string) (entities.Session, error)
	Resolve(ctx context.Context, id string) (entities.Session, error)
	Close(ctx context.Context, id string) error
}

type SessionUseCase struct {
	store  interfaces.ISessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(store interfaces.ISessionStore, jwtSecret string, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUseCase{store: store, secret: []byte(jwtSecret), ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func (u *SessionUseCase) Open(ctx context.Context, identityToken string) (entities.Session, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(identityToken), "Bearer "))
	if raw == "" {
		return entities.Session{}, missingField("identity_token")
	}
	if len(u.secret) == 0 {
		log.Printf("[session][usecase] open refused: AUTH_JWT_SECRET not configured")
		return entities.Session{}, ErrInvalidIdentityToken
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		log.Printf("[session][usecase] identity token rejected err=%v", err)
		return entities.Session{}, ErrInvalidIdentityToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Session{}, ErrInvalidIdentityToken
	}

	userID := claimString(claims, "sub")
	role := entities.Role(claimString(claims, "role"))
	if userID == "" || !role.Valid() {
		log.Printf("[session][usecase] identity token missing sub/role sub=%q role=%q", userID, role)
		return entities.Session{}, ErrInvalidIdentityToken
	}

	now := u.now()
	s := entities.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Name:      claimString(claims, "name"),
		CPF:       claimString(claims, "cpf"),
		Email:     claimString(claims, "email"),
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.store.Save(ctx, s, u.ttl); err != nil {
		log.Printf("[session][usecase] save failed user_id=%s err=%v", userID, err)
		return entities.Session{}, fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	log.Printf("[session][usecase] opened session_id=%s user_id=%s role=%s", s.ID, s.UserID, s.Role)
	return s, nil
}

func (u *SessionUseCase) Resolve(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	if s.ID == "" {
		return entities.Session{}, ErrInvalidSession
	}
	if s.Expired(u.now()) {
		_ = u.store.Delete(ctx, id)
		return entities.Session{}, ErrInvalidSession
	}
	return s, nil
}

func (u *SessionUseCase) Close(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSession
	}
	if err := u.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	log.Printf("[session][usecase] closed session_id=%s", id)
	return nil
}

// claimString accepts string and numeric claims; numeric subjects are common
// for identity providers backed by SQL ids.
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

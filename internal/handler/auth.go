package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/config"
	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/pkg/respond"
)

var (
	ErrMissingToken = errors.New("authorization header required")
	ErrInvalidToken = errors.New("invalid token")
)

// DevUser is the identity used when auth.dev_user is enabled.
var DevUser = model.User{
	ID:          "dev",
	Email:       "dev@localhost",
	Permissions: []string{string(model.PermissionRead), string(model.PermissionAdmin)},
}

type userKey struct{}

type Claims struct {
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Authenticator resolves the caller of every request from a bearer token.
type Authenticator struct {
	secret  []byte
	devUser bool
	now     func() time.Time
	logger  *zap.Logger
}

func NewAuthenticator(cfg config.AuthConfig, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		secret:  []byte(cfg.JWTSecret),
		devUser: cfg.DevUser,
		now:     time.Now,
		logger:  logger,
	}
}

// IssueToken signs a token for user that expires after ttl.
func IssueToken(secret string, user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:       user.Email,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Resolve returns the caller of r.
func (a *Authenticator) Resolve(r *http.Request) (model.User, error) {
	if a.devUser {
		return DevUser, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return model.User{}, ErrMissingToken
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return model.User{}, ErrInvalidToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		a.logger.Debug("token rejected", zap.Error(err))
		return model.User{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.User{}, ErrInvalidToken
	}

	return model.User{
		ID:          claims.Subject,
		Email:       claims.Email,
		Permissions: claims.Permissions,
	}, nil
}

// Middleware rejects unauthenticated requests and stores the caller in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.Resolve(r)
		if err != nil {
			respond.Error(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequirePermission rejects callers lacking p with 403.
func RequirePermission(p model.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				respond.Error(w, r, http.StatusUnauthorized, ErrMissingToken.Error())
				return
			}
			if !user.HasPermission(p) {
				respond.Error(w, r, http.StatusForbidden, fmt.Sprintf("User does not have permission %s.", p))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func UserFrom(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

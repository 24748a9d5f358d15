package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const (
	SubjectKey  contextKey = "subject"
	UserRoleKey contextKey = "user_role"
)

// Claims are the JWT claims accepted on protected routes
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// errMissingToken is returned by parseBearer when no Authorization header is sent
var errMissingToken = errors.New("missing authorization header")

// parseBearer verifies the bearer token of r and returns its claims. The
// token must carry both a subject and a role.
func parseBearer(r *http.Request, jwtSecret string) (*Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingToken
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" || tokenString == "" {
		return nil, errors.New("invalid authorization header format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Subject == "" || claims.Role == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func withClaims(r *http.Request, claims *Claims) *http.Request {
	ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
	ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
	return r.WithContext(ctx)
}

// AuthMiddleware validates HMAC-signed bearer tokens and stores the subject
// and role in the request context
func AuthMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseBearer(r, jwtSecret)
			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				switch {
				case errors.Is(err, errMissingToken):
					RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				case errors.Is(err, jwt.ErrTokenExpired):
					RespondWithError(w, http.StatusUnauthorized, "token expired")
				default:
					RespondWithError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}

			logger.Debug("Caller authenticated",
				zap.String("subject", claims.Subject),
				zap.String("role", claims.Role),
			)

			next.ServeHTTP(w, withClaims(r, claims))
		})
	}
}

// IdentifyCaller stores the subject and role of a valid bearer token in the
// request context and never rejects. It runs ahead of the rate limiter so
// authenticated callers get their own bucket.
func IdentifyCaller(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := parseBearer(r, jwtSecret); err == nil {
				r = withClaims(r, claims)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSubject extracts the token subject from request context
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

// GetUserRole extracts user role from request context
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleKey).(string)
	return role, ok
}

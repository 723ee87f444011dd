package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-controls/pkg/security"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName is the cookie the login front end stores its token in
const AuthCookieName = "controls_auth_token"

// JWTValidator interface for JWT validation
type JWTValidator interface {
	ValidateJWT(token string) (*security.User, error)
}

// AuthMiddleware provides authentication utilities for API operations
type AuthMiddleware struct {
	jwtValidator JWTValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator JWTValidator) *AuthMiddleware {
	return &AuthMiddleware{
		jwtValidator: validator,
	}
}

// ValidateAuthFromHeaders validates authentication from request headers
func (m *AuthMiddleware) ValidateAuthFromHeaders(authHeader, cookieHeader string) (*security.User, error) {
	// Try to get token from Authorization header first
	token := m.ExtractTokenFromHeaders(authHeader)

	if token == "" && cookieHeader != "" {
		token = m.ExtractTokenFromCookie(cookieHeader)
	}

	if token == "" {
		return nil, huma.Error401Unauthorized("Authentication required")
	}

	user, err := m.ValidateToken(token)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid authentication token", err)
	}

	return user, nil
}

// ValidateOptionalAuthFromHeaders validates optional authentication from request headers
func (m *AuthMiddleware) ValidateOptionalAuthFromHeaders(authHeader, cookieHeader string) *security.User {
	user, _ := m.ValidateAuthFromHeaders(authHeader, cookieHeader)
	return user
}

// ExtractTokenFromHeaders extracts JWT token from Authorization header string
func (m *AuthMiddleware) ExtractTokenFromHeaders(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// ExtractTokenFromCookie extracts JWT token from cookie header string
func (m *AuthMiddleware) ExtractTokenFromCookie(cookieHeader string) string {
	for _, cookie := range strings.Split(cookieHeader, ";") {
		cookie = strings.TrimSpace(cookie)
		if strings.HasPrefix(cookie, AuthCookieName+"=") {
			return strings.TrimPrefix(cookie, AuthCookieName+"=")
		}
	}
	return ""
}

// ValidateToken validates a JWT token string and returns the authenticated user
func (m *AuthMiddleware) ValidateToken(token string) (*security.User, error) {
	if token == "" {
		return nil, &AuthError{message: "no authentication token provided"}
	}
	return m.jwtValidator.ValidateJWT(token)
}

// HMACValidator validates HS256 login tokens issued by the identity service
type HMACValidator struct {
	secret []byte
}

func NewHMACValidator(secret []byte) *HMACValidator {
	return &HMACValidator{secret: secret}
}

// ValidateJWT parses the token and maps its claims onto a security.User
func (v *HMACValidator) ValidateJWT(tokenString string) (*security.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid JWT token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid JWT claims")
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("JWT has no user_id claim")
	}
	personGuid, _ := claims["person_guid"].(string)
	name, _ := claims["name"].(string)

	var roles []string
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if role, ok := r.(string); ok && role != "" {
				roles = append(roles, role)
			}
		}
	}

	return &security.User{
		UserID:     userID,
		PersonGuid: personGuid,
		Name:       name,
		Roles:      roles,
	}, nil
}

// AuthError represents an authentication error
type AuthError struct {
	message string
}

func (e *AuthError) Error() string {
	return e.message
}

var _ security.UserAuthenticator = (*AuthMiddleware)(nil)

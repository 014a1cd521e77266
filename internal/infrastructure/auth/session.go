package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// SessionClaims is the payload of the web frontend's session cookie. Role
// flags are derived from Role server-side on every proxied call; the
// browser never supplies them directly.
type SessionClaims struct {
	UserID   uint               `json:"user_id"`
	Username string             `json:"username"`
	Role     authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionService signs and verifies web session tokens.
type SessionService struct {
	secret   []byte
	expHours int
}

func NewSessionService(secret string, expHours int) *SessionService {
	if expHours <= 0 {
		expHours = 24
	}
	return &SessionService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

func (s *SessionService) Generate(userID uint, username string, role authorization.Role) (string, error) {
	now := biztime.NowUTC()
	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session claims")
	}

	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("invalid role in session")
	}

	return claims, nil
}

package auth

import (
	"errors"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Roles the platform distinguishes. Token issuance belongs to the auth
// collaborator; this package only mints (for tests/tools) and verifies.
const (
	RolePlayer    = "PLAYER"
	RoleClubAdmin = "CLUB_ADMIN"
	RoleAdmin     = "ADMIN"
)

type Claims struct {
	Sub    string `json:"sub"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	ClubID string `json:"club_id,omitempty"` // set for CLUB_ADMIN tokens
	jwt.RegisteredClaims
}

func CreateAccessToken(sub, role, email, clubID string, ttl time.Duration) (string, error) {
	claims := Claims{
		Sub:    sub,
		Role:   role,
		Email:  email,
		ClubID: clubID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func ParseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

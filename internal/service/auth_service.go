package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mikeconel/windrush-insights/config"
	"github.com/mikeconel/windrush-insights/internal/dto"
	"github.com/rs/zerolog/log"
)

// ErrBadCredentials is returned for a wrong admin password.
var ErrBadCredentials = errors.New("incorrect credentials")

const sessionTTL = 12 * time.Hour

// AuthService implements the shared-secret admin gate. A successful login
// issues a signed token carrying a session id; everything private is keyed
// and cached under that session id.
type AuthService interface {
	Login(req dto.LoginDTO) (*dto.TokenDTO, error)
	Verify(token string) (sessionID string, err error)
}

type authService struct {
	adminPassword string
	secret        []byte
}

func NewAuthService(cfg *config.Config) AuthService {
	if cfg.Auth.AdminPassword == "" {
		log.Warn().Msg("No admin password configured, private dashboard is locked out")
	}
	return &authService{
		adminPassword: cfg.Auth.AdminPassword,
		secret:        []byte(cfg.Auth.JWTSecret),
	}
}

func (s *authService) Login(req dto.LoginDTO) (*dto.TokenDTO, error) {
	if s.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		return nil, ErrBadCredentials
	}
	expiresAt := time.Now().Add(sessionTTL)
	claims := jwt.MapClaims{
		"sid": uuid.NewString(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign admin session token")
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}
	return &dto.TokenDTO{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify checks the token signature and expiry and returns the session id.
func (s *authService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrBadCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrBadCredentials
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrBadCredentials
	}
	return sid, nil
}

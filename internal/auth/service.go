package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sharath018/event-registration-backend/config"
)

const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service authenticates the dashboard administrator and checks the tokens it hands out.
type Service interface {
	Login(in LoginInput) (*Token, error)
	ParseAccessToken(tokenStr string) (*Claims, error)
}

type LoginInput struct {
	Username string
	Password string
}

type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type Claims struct {
	Username string
	Role     string
}

type service struct {
	username     string
	passwordHash []byte
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

// NewService reads the admin credentials from cfg. A plain ADMIN_PASSWORD is hashed once at
// startup so both settings are checked the same way.
func NewService(cfg *config.Config) (Service, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 && cfg.AdminPassword != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}

	secret := []byte(cfg.JWTAccessSecret)
	if len(secret) == 0 {
		// tokens from a server without a secret are only good until it restarts
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate access secret: %w", err)
		}
	}

	return &service{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		accessSecret: secret,
		accessTTL:    cfg.AccessTTL(),
		now:          time.Now,
	}, nil
}

// =============================
// Login
// =============================

func (s *service) Login(in LoginInput) (*Token, error) {
	if len(s.passwordHash) == 0 {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(s.username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expires := s.now().Add(s.accessTTL)
	claims := jwt.MapClaims{
		"sub":  s.username,
		"role": RoleAdmin,
		"iat":  s.now().Unix(),
		"exp":  expires.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: signed, ExpiresAt: time.Unix(expires.Unix(), 0).UTC()}, nil
}

// =============================
// Token check
// =============================

func (s *service) ParseAccessToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return &Claims{Username: sub, Role: role}, nil
}

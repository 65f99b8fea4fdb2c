package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/mindmates/internal/crypto"
	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/limiter"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/repository"
)

// AuthService defines account operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password string) (userID string, err error)
	// Login authenticates the user and issues an access token. Repeated failures from the
	// same address lock the username out for a while.
	Login(ctx context.Context, username, password, ip string) (tokens model.Tokens, user model.User, err error)
	// ParseToken verifies an access token and returns its subject.
	ParseToken(token string) (uuid.UUID, error)
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	lim       limiter.Limiter
	signKey   []byte
	accessTTL time.Duration
	now       func() time.Time
	log       *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
// A nil lim uses an in-process limiter with limiter.DefaultPolicy.
func NewAuthService(
	users repository.UserRepository, lim limiter.Limiter, signKey []byte, accessTTL time.Duration, env Env,
) *AuthServiceImpl {
	env = env.withDefaults()
	if lim == nil {
		lim = limiter.NewMemory(limiter.DefaultPolicy)
	}
	return &AuthServiceImpl{users: users, lim: lim, signKey: signKey, accessTTL: accessTTL, now: env.Now, log: env.Log}
}

// Register creates a new user record.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (string, error) {
	if err := checkVar("username", username, "required,min=3,max=32,alphanum"); err != nil {
		return "", err
	}
	if err := checkVar("password", password, "required,min=6,max=128"); err != nil {
		return "", err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	pwdHash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return "", err
	}
	u := &model.User{ID: uid, Username: username, PwdHash: pwdHash}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	s.log.Info("user registered", zap.String("user_id", uid.String()))
	return uid.String(), nil
}

// Login checks credentials, rate limited by (username, ip). Unknown users and wrong passwords
// both yield errs.ErrUnauthorized and count as failures; a locked pair yields errs.ErrRateLimited.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password, ip string) (model.Tokens, model.User, error) {
	ipHash := limiter.HashIP(ip)
	allowed, wait, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	if !allowed {
		s.log.Info("login locked", zap.String("username", username), zap.Duration("retry_after", wait))
		return model.Tokens{}, model.User{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, model.User{}, err
	}
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PwdHash) {
		blocked, _, ferr := s.lim.Failure(ctx, username, ipHash)
		if ferr != nil {
			s.log.Warn("record login failure", zap.Error(ferr))
		}
		if blocked {
			s.log.Info("login locked", zap.String("username", username))
			return model.Tokens{}, model.User{}, errs.ErrRateLimited
		}
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}
	if err := s.lim.Success(ctx, username, ipHash); err != nil {
		s.log.Warn("reset login failures", zap.Error(err))
	}

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *u, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// ParseToken verifies HS256 signature and time claims, returning sub as UUID.
func (s *AuthServiceImpl) ParseToken(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return id, nil
}

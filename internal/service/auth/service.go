// Package auth is the session manager: it registers and authenticates
// users, issues and revokes session tokens, and runs the password reset
// flow.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/email"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/service/event"
	"github.com/healthnet/admin-api/pkg/auth"
	"github.com/healthnet/admin-api/pkg/errors"
	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/security"
)

type Config struct {
	TokenExpiry     time.Duration
	ResetCodeTTL    time.Duration
	ExposeResetCode bool
}

type Service struct {
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	tokenRepo    repository.TokenRepository
	jwtSvc       auth.JWTService
	hasher       security.PasswordHasher
	emailSvc     email.Service
	events       *event.Service
	logger       *logger.Logger
	cfg          Config
}

func NewService(userRepo repository.UserRepository, facilityRepo repository.FacilityRepository,
	tokenRepo repository.TokenRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher,
	emailSvc email.Service, events *event.Service, logger *logger.Logger, cfg Config) *Service {
	if cfg.TokenExpiry <= 0 {
		cfg.TokenExpiry = 24 * time.Hour
	}
	if cfg.ResetCodeTTL <= 0 {
		cfg.ResetCodeTTL = time.Hour
	}
	return &Service{
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		tokenRepo:    tokenRepo,
		jwtSvc:       jwtSvc,
		hasher:       hasher,
		emailSvc:     emailSvc,
		events:       events,
		logger:       logger,
		cfg:          cfg,
	}
}

// Register creates a user and opens a session. Duplicate usernames or
// emails fail with a conflict.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, string, error) {
	facilityID, err := s.resolveFacility(ctx, req)
	if err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", errors.Validation(fmt.Sprintf("invalid password: %v", err))
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FacilityID:   facilityID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, "", errors.Internal(fmt.Errorf("failed to generate session token: %w", err))
	}

	s.events.Publish(ctx, event.TypeUserRegistered, map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, token, nil
}

func (s *Service) resolveFacility(ctx context.Context, req *model.RegisterRequest) (*uuid.UUID, error) {
	if req.Role.RequiresFacility() {
		if req.FacilityID == "" {
			return nil, errors.Validation(fmt.Sprintf("facility_id is required for role %s", req.Role))
		}
		id, err := uuid.Parse(req.FacilityID)
		if err != nil {
			return nil, errors.Validation("facility_id must be a valid id")
		}
		if _, err := s.facilityRepo.Get(ctx, id); err != nil {
			return nil, err
		}
		return &id, nil
	}
	if req.FacilityID != "" {
		return nil, errors.Validation(fmt.Sprintf("role %s cannot have a facility affiliation", req.Role))
	}
	return nil, nil
}

// Login validates credentials and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", errors.Unauthenticated("invalid credentials")
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", errors.Unauthenticated("invalid credentials")
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, "", errors.Internal(fmt.Errorf("failed to generate session token: %w", err))
	}
	return user, token, nil
}

// Logout revokes the session token. It always succeeds from the caller's
// point of view; a failed revocation is logged and the client clears its
// local session regardless.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.tokenRepo.RevokeToken(ctx, token, s.cfg.TokenExpiry); err != nil {
		s.logger.Error(err, "failed to revoke session token")
	}
}

// Profile resolves the current session's user.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Unauthenticated("session user no longer exists")
	}
	return user, nil
}

// RequestPasswordReset issues a reset code. Unknown emails still answer
// success so the endpoint cannot be used to probe accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return "", nil
	}

	code := uuid.New().String()
	if err := s.tokenRepo.StoreResetCode(ctx, user.Email, code, s.cfg.ResetCodeTTL); err != nil {
		return "", errors.Internal(fmt.Errorf("failed to store reset code: %w", err))
	}

	if err := s.emailSvc.SendPasswordReset(ctx, user.Email, code); err != nil {
		s.logger.With("email", user.Email).Error(err, "failed to send reset email")
	}

	if s.cfg.ExposeResetCode {
		return code, nil
	}
	return "", nil
}

// ConfirmPasswordReset validates the code and replaces the credential.
func (s *Service) ConfirmPasswordReset(ctx context.Context, emailAddr, code, newPassword string) error {
	if err := s.tokenRepo.ValidateResetCode(ctx, emailAddr, code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Validation(fmt.Sprintf("invalid password: %v", err))
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.tokenRepo.InvalidateResetCode(ctx, emailAddr)
}

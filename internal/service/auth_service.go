package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrMKsharma/BHC-Health-Connect/internal/domain"
	"github.com/MrMKsharma/BHC-Health-Connect/pkg/auth"
)

const minPasswordLength = 8

// UserRepository is the identity boundary. CreateUser and CreateProfile are
// the two dependent writes of sign-up; DeleteUser is the compensating write
// when the second one fails.
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UpdateLoginAttempt(ctx context.Context, id uuid.UUID, success bool) error
	CreateProfile(ctx context.Context, p *domain.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type AuthService struct {
	userRepo   UserRepository
	jwtManager *auth.JWTManager
	hub        *SessionHub
	auditSvc   *AuditService
	log        *zap.Logger
}

func NewAuthService(userRepo UserRepository, jwtManager *auth.JWTManager, hub *SessionHub, auditSvc *AuditService, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		hub:        hub,
		auditSvc:   auditSvc,
		log:        log,
	}
}

type SignUpCommand struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
	Phone    string
}

// SignUp performs the two dependent writes: create the identity, then the
// profile row keyed by the new identity id. If the profile write fails the
// identity is deleted again and the profile-write error is surfaced, so a
// half-registered account never survives.
func (s *AuthService) SignUp(ctx context.Context, cmd SignUpCommand, ip string) (*domain.TokenPair, error) {
	if err := validateSignUp(&cmd); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(cmd.Email)),
		PasswordHash: string(hash),
		Role:         cmd.Role,
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:        user.ID,
		FullName:  strings.TrimSpace(cmd.Name),
		Email:     user.Email,
		Role:      cmd.Role,
		Phone:     strings.TrimSpace(cmd.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if profileErr := s.userRepo.CreateProfile(ctx, profile); profileErr != nil {
		// Roll back the identity write; the caller gets the profile error.
		if delErr := s.userRepo.DeleteUser(ctx, user.ID); delErr != nil {
			s.log.Error("failed to roll back identity after profile write failure",
				zap.String("user_id", user.ID.String()),
				zap.Error(delErr),
			)
		}
		return nil, profileErr
	}

	claims := &domain.Claims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		HealthCardID: user.HealthCardID,
	}

	pair, err := s.jwtManager.GenerateTokenPair(claims)
	if err != nil {
		s.log.Error("failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	s.hub.Publish(domain.SessionEvent{
		Kind:       domain.SessionSignedIn,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		OccurredAt: time.Now(),
	})

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       user.ID,
		UserRole:     string(user.Role),
		Action:       string(domain.ActionSignup),
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		IPAddress:    ip,
	})

	s.log.Info("user signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return pair, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password, ip string) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Use bcrypt dummy hash to prevent timing-based user enumeration.
		_, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if user.IsLocked() {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		_ = s.userRepo.UpdateLoginAttempt(ctx, user.ID, false)
		s.log.Warn("failed login attempt",
			zap.String("email", email),
			zap.String("ip", ip),
		)
		return nil, ErrInvalidCredentials
	}

	_ = s.userRepo.UpdateLoginAttempt(ctx, user.ID, true)

	claims := &domain.Claims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		HealthCardID: user.HealthCardID,
	}

	pair, err := s.jwtManager.GenerateTokenPair(claims)
	if err != nil {
		s.log.Error("failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	s.hub.Publish(domain.SessionEvent{
		Kind:       domain.SessionSignedIn,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		OccurredAt: time.Now(),
	})

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       user.ID,
		UserRole:     string(user.Role),
		Action:       string(domain.ActionLogin),
		ResourceType: "session",
		IPAddress:    ip,
	})

	s.log.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", ip),
	)

	return pair, nil
}

// SignOut destroys the caller's session. The access token expires on its
// own schedule; the signed-out event is the out-of-band notification that
// dependents subscribe to.
func (s *AuthService) SignOut(ctx context.Context, claims *domain.Claims, ip string) {
	s.hub.Publish(domain.SessionEvent{
		Kind:       domain.SessionSignedOut,
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		OccurredAt: time.Now(),
	})

	s.auditSvc.LogAsync(ctx, AuditEntry{
		UserID:       claims.UserID,
		UserRole:     string(claims.Role),
		Action:       string(domain.ActionLogout),
		ResourceType: "session",
		IPAddress:    ip,
	})
}

// Refresh issues a new token pair given a valid refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Re-validate the user is still active
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	updated := &domain.Claims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		HealthCardID: user.HealthCardID,
	}

	pair, err := s.jwtManager.GenerateTokenPair(updated)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	s.hub.Publish(domain.SessionEvent{
		Kind:       domain.SessionRefreshed,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		OccurredAt: time.Now(),
	})

	return pair, nil
}

// Profile returns the profile row for the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.userRepo.GetProfile(ctx, userID)
}

func validateSignUp(cmd *SignUpCommand) error {
	var errs []string

	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(email, "@") {
		errs = append(errs, "email is invalid")
	}
	if len(cmd.Password) < minPasswordLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if strings.TrimSpace(cmd.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !cmd.Role.IsValid() {
		errs = append(errs, "role is invalid")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

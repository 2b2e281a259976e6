package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
	pkgauth "github.com/healthcompanion/api/pkg/auth"
	apperrors "github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/security"
)

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   pkgauth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc pkgauth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Register creates an account and its role profile in one transaction. An
// unrecognized user type is rejected outright rather than leaving an orphaned
// account behind.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if !model.ValidUserType(req.UserType) {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown user type %q", req.UserType), nil)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict("email already registered", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	user := &model.User{
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		UserType:     req.UserType,
	}

	if err := s.userRepo.Register(ctx, user, s.buildProfile(req)); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperrors.Conflict("email already registered", err)
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, apperrors.Conflict("phone already registered", err)
		default:
			return nil, apperrors.Internal(err)
		}
	}

	return &model.RegisterResponse{UserID: user.ID}, nil
}

// Login verifies credentials and mints a signed access token carrying the
// account's identity and role, plus the resolved role-profile id.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("incorrect email or password", nil)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("incorrect email or password", nil)
	}

	profileID, err := s.userRepo.ProfileID(ctx, user.ID, user.UserType)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    user.UserType,
		UserID:      user.ID,
		ProfileID:   profileID,
	}, nil
}

// ValidateToken checks a bearer token and returns its claims.
func (s *Service) ValidateToken(_ context.Context, token string) (*pkgauth.Claims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token", err)
	}
	return claims, nil
}

func (s *Service) buildProfile(req *model.RegisterRequest) interface{} {
	switch req.UserType {
	case model.UserTypeDoctor:
		return &model.Doctor{
			Name:           req.Name,
			Specialization: deref(req.Specialization),
			Location:       req.Location,
			Phone:          &req.Phone,
		}
	case model.UserTypePharmacy:
		return &model.Pharmacy{
			Name:     req.Name,
			Location: deref(req.Location),
			Phone:    &req.Phone,
		}
	default:
		return &model.Patient{
			Name:     req.Name,
			Location: req.Location,
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

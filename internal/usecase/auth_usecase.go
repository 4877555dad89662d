package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrRoleMismatch       = errors.New("not authorized to login with this role")
)

type userStore interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
}

type AuthUsecase struct {
	users userStore
	cfg   *config.AuthConfig
}

func NewAuthUsecase(users userStore, cfg *config.AuthConfig) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg}
}

func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.users.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.UserRole(req.Role),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	return uc.issueToken(user)
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// The login surface must match the stored role; a teacher cannot sign in
	// through the student page and vice versa.
	if string(user.Role) != req.Role {
		return nil, ErrRoleMismatch
	}

	return uc.issueToken(user)
}

func (uc *AuthUsecase) issueToken(user *model.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(uc.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: signed,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

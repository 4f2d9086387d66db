package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/config"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/repository"
	"github.com/vidyonnati/foundation-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(fullName, email, phone, rawPassword string) (*models.User, error)
	Login(email, rawPassword string) (string, *models.User, error)
	UserByID(id uuid.UUID) (*models.User, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	secret []byte
	expire time.Duration
}

func NewAuthService(users repository.UserRepository, cfg config.JWTConfig) AuthService {
	return &AuthServiceImpl{
		users:  users,
		secret: []byte(cfg.Secret),
		expire: time.Duration(cfg.ExpireMinutes) * time.Minute,
	}
}

func (s *AuthServiceImpl) Register(fullName, email, phone, rawPassword string) (*models.User, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errors.New("an account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
		Role:     models.RoleApplicant,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Login(email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(rawPassword)) != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, err := utils.GenerateToken(user.ID.String(), user.Role, s.secret, s.expire)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthServiceImpl) UserByID(id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(id)
}

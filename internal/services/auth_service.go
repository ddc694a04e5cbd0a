package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workreward/work-reward-api/internal/constants"
	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"github.com/workreward/work-reward-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrNameRequired         = errors.New("first name and last name are required")
	ErrEmailRequired        = errors.New("email is required")
	ErrInvalidManagerCode   = errors.New("manager code is invalid or already used")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and authentication. A signup carrying a
// valid unused manager code produces a manager account and consumes the
// code in the same transaction.
type AuthService struct {
	userRepo repository.UserRepository
	codeRepo repository.ManagerCodeRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, codeRepo repository.ManagerCodeRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codeRepo: codeRepo,
	}
}

// SignupInput represents the required information to create a new account.
type SignupInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Patronymic  string
	ManagerCode string
}

// Signup creates a new user account.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrNameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Patronymic:   input.Patronymic,
		Role:         models.RolePerformer,
		IsActive:     true,
	}

	if input.ManagerCode != "" {
		if err := s.userRepo.CreateManagerWithCode(user, input.ManagerCode); err != nil {
			switch {
			case errors.Is(err, repository.ErrManagerCodeUnavailable):
				return nil, ErrInvalidManagerCode
			case errors.Is(err, gorm.ErrDuplicatedKey):
				return nil, ErrEmailTaken
			default:
				return nil, fmt.Errorf("failed to complete signup: %w", err)
			}
		}
		return user, nil
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GenerateManagerCodes mints count fresh one-time manager registration
// codes. Only managers may mint codes.
func (s *AuthService) GenerateManagerCodes(actorID uint64, count int) ([]models.ManagerCode, error) {
	actor, err := s.GetUser(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, ErrOnlyManagers
	}

	if count < 1 {
		count = 1
	}

	codes := make([]models.ManagerCode, 0, count)
	for i := 0; i < count; i++ {
		value, err := utils.GenerateManagerCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		code := models.ManagerCode{Code: value}
		if err := s.codeRepo.Create(&code); err != nil {
			return nil, fmt.Errorf("failed to store code: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, nil
}

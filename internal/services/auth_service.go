package services

import (
	"errors"
	"regexp"

	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameRequired   = errors.New("username required")
	ErrUsernameTaken      = errors.New("username is taken")
	ErrPasswordRequired   = errors.New("password required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)

// MinPasswordLength is the minimum accepted password length for Register.
const MinPasswordLength = 8

var (
	specialPattern = regexp.MustCompile(`[~!@#$%^&*()=-]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
)

type AuthService struct {
	userRepo     *repository.UserRepository
	startingCash decimal.Decimal
}

func NewAuthService(userRepo *repository.UserRepository, startingCash decimal.Decimal) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		startingCash: startingCash,
	}
}

// Register validates the signup form and creates the user with the default
// cash balance. The new user is not logged in.
func (s *AuthService) Register(username, password, confirmation string) (*models.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	if password == "" {
		return nil, ErrPasswordRequired
	}
	if password != confirmation {
		return nil, ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !specialPattern.MatchString(password) && !digitPattern.MatchString(password) {
		return nil, ErrPasswordTooWeak
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Hash:     string(hash),
		Cash:     s.startingCash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials against the stored bcrypt hash. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

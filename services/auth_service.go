package services

import (
	"errors"
	"fmt"
	"time"

	"realestate-api/dto"
	"realestate-api/infra"
	"realestate-api/models"
	"realestate-api/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned by SignUp when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidProductKey is returned when a privileged signup presents a
	// missing or non-matching product key.
	ErrInvalidProductKey = errors.New("invalid product key")
)

const (
	hashCost = 12
	tokenTTL = time.Hour
)

type IAuthService interface {
	SignUp(input dto.SignupInput, role string) (*string, error)
	SignIn(email string, password string) (*string, error)
	GenerateProductKey(email string, role string) (string, error)
	VerifyProductKey(email string, role string, suppliedKey string) error
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
	config     infra.AuthConfig
}

func NewAuthService(repository repositories.IAuthRepository, config infra.AuthConfig) IAuthService {
	return &AuthService{
		repository: repository,
		config:     config,
	}
}

func (s *AuthService) SignUp(input dto.SignupInput, role string) (*string, error) {
	_, err := s.repository.FindUserByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), hashCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repository.CreateUser(models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashedPassword),
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return s.createToken(user.Name, user.ID)
}

func (s *AuthService) SignIn(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createToken(foundUser.Name, foundUser.ID)
}

// GenerateProductKey derives the digest a privileged-signup requester must
// present back. The plaintext is email-role-secret; the digest is what
// VerifyProductKey checks against.
func (s *AuthService) GenerateProductKey(email string, role string) (string, error) {
	plaintext := fmt.Sprintf("%s-%s-%s", email, role, s.config.ProductKeySecret)
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyProductKey recomputes the key plaintext for email and role and
// checks it against the caller-supplied bcrypt digest. Any mismatch,
// including a malformed digest, fails closed.
func (s *AuthService) VerifyProductKey(email string, role string, suppliedKey string) error {
	plaintext := fmt.Sprintf("%s-%s-%s", email, role, s.config.ProductKeySecret)
	if err := bcrypt.CompareHashAndPassword([]byte(suppliedKey), []byte(plaintext)); err != nil {
		return ErrInvalidProductKey
	}
	return nil
}

func (s *AuthService) createToken(name string, userID uint) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"id":   userID,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return s.repository.FindUserById(uint(userID))
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/genbahq/cashsignal/internal/config"
	"github.com/genbahq/cashsignal/internal/middleware"
	"github.com/genbahq/cashsignal/internal/models"
	"github.com/genbahq/cashsignal/internal/repository"
)

// ErrInvalidCredentials is returned when the email or password does not match
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// RegisterInput carries the signup fields for a new company and its owner
type RegisterInput struct {
	CompanyName string          `json:"company_name"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	BankBalance decimal.Decimal `json:"bank_balance"`
	DangerLine  decimal.Decimal `json:"danger_line"`
}

// LoginInput carries the login credentials
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response of a successful register or login
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles signup and login
type AuthService struct {
	repo *repository.Repository
	cfg  *config.Config
	log  *logrus.Logger
}

// NewAuthService initializes a new auth service
func NewAuthService(repo *repository.Repository, cfg *config.Config, log *logrus.Logger) *AuthService {
	return &AuthService{repo: repo, cfg: cfg, log: log}
}

// Register creates a company with its owner account and returns a token
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:          uuid.NewString(),
		Name:        in.CompanyName,
		BankBalance: in.BankBalance,
		DangerLine:  in.DangerLine,
	}
	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		Notify:       true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Company %s registered with owner %s", company.ID, user.ID)
	return &AuthResult{Token: token, User: user}, nil
}

// Login checks the credentials and returns a token
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.repo.FindUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		CompanyID: user.CompanyID,
		Role:      user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

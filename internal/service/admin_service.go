package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// AdminService coordina alta y autenticación de la cuenta admin del sitio.
type AdminService struct {
	repo       repository.AdminRepository
	signupCode string
}

var (
	ErrAdminNotConfigured = errors.New("admin service not configured")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrSignupCodeRequired = errors.New("signup code mismatch")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLen = 8

// NewAdminService crea el servicio; signupCode vacío deja el registro abierto.
func NewAdminService(repo repository.AdminRepository, signupCode string) *AdminService {
	return &AdminService{repo: repo, signupCode: strings.TrimSpace(signupCode)}
}

func (s *AdminService) Signup(ctx context.Context, emailAddr, password, code string) (domain.AdminUser, error) {
	if s == nil || s.repo == nil {
		return domain.AdminUser{}, ErrAdminNotConfigured
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return domain.AdminUser{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return domain.AdminUser{}, ErrWeakPassword
	}
	if s.signupCode != "" && strings.TrimSpace(code) != s.signupCode {
		return domain.AdminUser{}, ErrSignupCodeRequired
	}

	if _, err := s.repo.GetByEmail(ctx, emailAddr); err == nil {
		return domain.AdminUser{}, ErrAdminAlreadyExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.AdminUser{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, err
	}

	admin := domain.AdminUser{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return domain.AdminUser{}, err
	}
	return admin, nil
}

func (s *AdminService) Authenticate(ctx context.Context, emailAddr, password string) (domain.AdminUser, error) {
	if s == nil || s.repo == nil {
		return domain.AdminUser{}, ErrAdminNotConfigured
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.AdminUser{}, ErrInvalidCredentials
	}

	admin, err := s.repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AdminUser{}, ErrInvalidCredentials
		}
		return domain.AdminUser{}, err
	}
	if admin.PasswordHash == "" {
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

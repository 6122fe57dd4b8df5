package services

import (
	"errors"
	"time"

	"github.com/skillmatch/backend/internal/config"
	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/utils"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

// AuthService handles credential verification and token issuance.
type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	ExpireAt time.Time    `json:"expire_at"`
}

// Register creates a new account from a public signup.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, response.NewValidation("missing_field", "name, email, password and role are required")
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, response.NewValidation("invalid_email", "invalid email address")
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, response.NewValidation("invalid_role", "role must be ADMIN, CLIENT or FREELANCER")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		Bio:      req.Bio,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("email_taken", "email already in use")
		}
		return nil, err
	}

	return &user, nil
}

// Login verifies a password credential and issues a bearer token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user_not_found", "user not found")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewAuthentication("wrong_password", "incorrect password")
	}

	expireHours := s.jwtConfig.ExpireHour
	token, err := utils.GenerateToken(user.ID, user.Name, string(user.Role), expireHours)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		User:     &user,
		ExpireAt: time.Now().Add(time.Duration(expireHours) * time.Hour),
	}, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user_not_found", "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateAdminIfNotExists seeds a default ADMIN account so a fresh install
// is bootstrappable.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)

	if count == 0 {
		hashedPassword, err := utils.HashPassword("admin")
		if err != nil {
			return err
		}

		admin := models.User{
			Name:     "Administrator",
			Email:    "admin@skillmatch.local",
			Password: hashedPassword,
			Role:     models.RoleAdmin,
		}

		return s.db.Create(&admin).Error
	}

	return nil
}

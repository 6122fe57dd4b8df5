package services

import (
	"errors"

	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/policy"
	"github.com/skillmatch/backend/internal/utils"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

// UserService orchestrates user CRUD around the policy engine.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
}

// UpdateUserRequest uses pointers so absent fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
}

func forbidden(d policy.Decision) error {
	return response.NewForbidden(string(d.Reason), "access denied")
}

// List returns all users. ADMIN only.
func (s *UserService) List(p policy.Principal) ([]models.User, error) {
	if d := policy.CanListUsers(p); !d.Allowed {
		return nil, forbidden(d)
	}

	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create adds a user account. ADMIN only.
func (s *UserService) Create(p policy.Principal, req *CreateUserRequest) (*models.User, error) {
	if d := policy.CanCreateUser(p); !d.Allowed {
		return nil, forbidden(d)
	}

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

// Update modifies a user. Only supplied fields change; the role field is
// silently retained unless the acting principal is an ADMIN.
func (s *UserService) Update(p policy.Principal, id uint, req *UpdateUserRequest) (*models.User, error) {
	if d := policy.CanModifyUser(p, id); !d.Allowed {
		return nil, forbidden(d)
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user_not_found", "user not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		if !utils.ValidateEmail(*req.Email) {
			return nil, response.NewValidation("invalid_email", "invalid email address")
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if req.Role != nil && policy.CanChangeRole(p) {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			return nil, response.NewValidation("invalid_role", "role must be ADMIN, CLIENT or FREELANCER")
		}
		updates["role"] = role
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, response.NewConflict("email_taken", "email already in use")
			}
			return nil, err
		}
	}

	s.db.First(&user, id)
	return &user, nil
}

// Delete removes a user and everything hanging off them in one transaction:
// their applications, the applications and skills on their projects, their
// projects, then the user row. Partial completion is never observable.
func (s *UserService) Delete(p policy.Principal, id uint) error {
	if d := policy.CanModifyUser(p, id); !d.Allowed {
		return forbidden(d)
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("user_not_found", "user not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		ownProjects := tx.Model(&models.Project{}).Select("id").Where("creator_id = ?", id)

		// Applications first, then projects, to respect referential order.
		if err := tx.Where("freelancer_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id IN (?)", ownProjects).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id IN (?)", ownProjects).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("creator_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

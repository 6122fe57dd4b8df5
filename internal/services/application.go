package services

import (
	"errors"

	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/policy"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

// ApplicationService owns the application lifecycle: creation under the
// one-per-(freelancer, project) invariant, the PENDING -> APPROVED/REJECTED
// state machine, and role-scoped visibility for listing.
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

type ApplicationListRequest struct {
	FreelancerID *uint  `form:"freelancer_id"`
	ProjectID    *uint  `form:"project_id"`
	Status       string `form:"status"`
}

type CreateApplicationRequest struct {
	FreelancerID uint `json:"freelancer_id"`
	ProjectID    uint `json:"project_id"`
}

// List returns applications visible to the principal. The policy engine
// supplies a row-level filter which is compiled into the query; the
// freelancer_id and project_id request filters are honored only for ADMIN,
// while the status filter is available to every role.
func (s *ApplicationService) List(p policy.Principal, req *ApplicationListRequest) ([]models.Application, error) {
	filter, d := policy.ApplicationsVisibility(p)
	if !d.Allowed {
		return nil, forbidden(d)
	}

	query := s.db.Model(&models.Application{}).
		Preload("Freelancer").
		Preload("Project")

	switch {
	case filter.FreelancerID != nil:
		query = query.Where("freelancer_id = ?", *filter.FreelancerID)
	case filter.CreatorID != nil:
		ownProjects := s.db.Model(&models.Project{}).Select("id").
			Where("creator_id = ?", *filter.CreatorID)
		query = query.Where("project_id IN (?)", ownProjects)
	}

	if filter.All {
		if req.FreelancerID != nil {
			query = query.Where("freelancer_id = ?", *req.FreelancerID)
		}
		if req.ProjectID != nil {
			query = query.Where("project_id = ?", *req.ProjectID)
		}
	}
	if req.Status != "" {
		status, err := models.ParseApplicationStatus(req.Status)
		if err != nil {
			return nil, response.NewValidation("invalid_status", "status must be PENDING, APPROVED or REJECTED")
		}
		query = query.Where("status = ?", status)
	}

	var apps []models.Application
	if err := query.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Create submits an application with status PENDING. The referenced
// freelancer and project must exist. Duplicates are caught by the unique
// (freelancer_id, project_id) index, so concurrent submissions cannot
// produce two rows.
func (s *ApplicationService) Create(p policy.Principal, req *CreateApplicationRequest) (*models.Application, error) {
	if req.FreelancerID == 0 || req.ProjectID == 0 {
		return nil, response.NewValidation("missing_field", "freelancer_id and project_id are required")
	}

	if d := policy.CanCreateApplication(p, req.FreelancerID); !d.Allowed {
		return nil, forbidden(d)
	}

	var freelancer models.User
	if err := s.db.First(&freelancer, req.FreelancerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("freelancer_not_found", "freelancer not found")
		}
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project_not_found", "project not found")
		}
		return nil, err
	}

	app := models.Application{
		FreelancerID: req.FreelancerID,
		ProjectID:    req.ProjectID,
		Status:       models.StatusPending,
	}

	if err := s.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("duplicate_application", "freelancer has already applied to this project")
		}
		return nil, err
	}

	s.db.Preload("Freelancer").Preload("Project").First(&app, app.ID)
	return &app, nil
}

// SetStatus drives the application state machine. The new status must parse
// regardless of caller role; only the project's creator or an ADMIN may
// transition. Re-submitting the current status is an accepted no-op; any
// other transition out of a terminal state is rejected.
func (s *ApplicationService) SetStatus(p policy.Principal, id uint, statusStr string) (*models.Application, error) {
	if statusStr == "" {
		return nil, response.NewValidation("missing_field", "status is required")
	}

	status, err := models.ParseApplicationStatus(statusStr)
	if err != nil {
		return nil, response.NewValidation("invalid_status", "status must be PENDING, APPROVED or REJECTED")
	}

	var app models.Application
	if err := s.db.Preload("Project").First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("application_not_found", "application not found")
		}
		return nil, err
	}

	if d := policy.CanSetApplicationStatus(p, app.Project.CreatorID); !d.Allowed {
		return nil, forbidden(d)
	}

	if app.Status == status {
		// Idempotent re-submission, terminal states included.
		s.db.Preload("Freelancer").Preload("Project").First(&app, id)
		return &app, nil
	}
	if app.Status.Terminal() {
		return nil, response.NewValidation("invalid_transition",
			"application is already "+app.Status.String())
	}

	if err := s.db.Model(&app).Update("status", status).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Freelancer").Preload("Project").First(&app, id)
	return &app, nil
}

// Delete withdraws an application. Owning freelancer or ADMIN.
func (s *ApplicationService) Delete(p policy.Principal, id uint) error {
	var app models.Application
	if err := s.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("application_not_found", "application not found")
		}
		return err
	}

	if d := policy.CanDeleteApplication(p, app.FreelancerID); !d.Allowed {
		return forbidden(d)
	}

	return s.db.Delete(&models.Application{}, id).Error
}

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/policy"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

// ProjectService orchestrates project CRUD around the policy engine and
// normalizes skill tags before they hit storage.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Title     string   `form:"title"`
	CreatorID *uint    `form:"creator_id"`
	Skill     string   `form:"skill"`
	MinBudget *float64 `form:"min_budget"`
	MaxBudget *float64 `form:"max_budget"`
	OrderBy   string   `form:"order_by"` // field:direction, e.g. budget:asc
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
	Deadline    string   `json:"deadline"` // YYYY-MM-DD
	Skills      []string `json:"skills"`
}

// UpdateProjectRequest uses pointers so absent fields are left untouched.
// An empty or absent skill list keeps the existing skills.
type UpdateProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	Deadline    *string  `json:"deadline"`
	Status      *string  `json:"status"`
	Skills      []string `json:"skills"`
}

// orderableFields is the allowlist for the order_by query parameter.
var orderableFields = map[string]string{
	"title":      "title",
	"budget":     "budget",
	"deadline":   "deadline",
	"created_at": "created_at",
}

// List returns projects visible to any authenticated principal, with
// optional filters and ordering.
func (s *ProjectService) List(p policy.Principal, req *ProjectListRequest) ([]models.Project, error) {
	if d := policy.CanListProjects(p); !d.Allowed {
		return nil, forbidden(d)
	}

	query := s.db.Model(&models.Project{}).
		Preload("Creator").
		Preload("Skills").
		Preload("Applications")

	if req.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(req.Title)+"%")
	}
	if req.CreatorID != nil {
		query = query.Where("creator_id = ?", *req.CreatorID)
	}
	if req.MinBudget != nil {
		query = query.Where("budget >= ?", *req.MinBudget)
	}
	if req.MaxBudget != nil {
		query = query.Where("budget <= ?", *req.MaxBudget)
	}
	if req.Skill != "" {
		skillMatch := s.db.Model(&models.Skill{}).Select("project_id").
			Where("name LIKE ?", "%"+strings.ToLower(strings.TrimSpace(req.Skill))+"%")
		query = query.Where("id IN (?)", skillMatch)
	}

	query = query.Order(parseOrderBy(req.OrderBy))

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// parseOrderBy turns "field:direction" into a safe ORDER BY clause,
// defaulting to newest first. Unknown fields and directions fall back to
// the default rather than erroring.
func parseOrderBy(orderBy string) string {
	if orderBy != "" {
		parts := strings.SplitN(orderBy, ":", 2)
		if len(parts) == 2 {
			field, ok := orderableFields[strings.ToLower(parts[0])]
			dir := strings.ToLower(parts[1])
			if ok && (dir == "asc" || dir == "desc") {
				return field + " " + strings.ToUpper(dir)
			}
		}
	}
	return "created_at DESC"
}

// GetByID returns a project with its creator, skills and applications.
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := s.db.Preload("Creator").Preload("Skills").Preload("Applications").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project_not_found", "project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Create adds a project. CLIENT role only; the creator is the principal.
func (s *ProjectService) Create(p policy.Principal, req *CreateProjectRequest) (*models.Project, error) {
	if d := policy.CanCreateProject(p); !d.Allowed {
		return nil, forbidden(d)
	}

	if req.Title == "" || req.Description == "" || req.Budget == nil || req.Deadline == "" {
		return nil, response.NewValidation("missing_field", "title, description, budget and deadline are required")
	}
	if *req.Budget < 0 {
		return nil, response.NewValidation("invalid_budget", "budget must not be negative")
	}

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, response.NewValidation("invalid_deadline", "deadline must be a YYYY-MM-DD date")
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Budget:      *req.Budget,
		Deadline:    deadline,
		Status:      models.ProjectStatusOpen,
		CreatorID:   p.ID,
	}
	for _, name := range normalizeSkills(req.Skills) {
		project.Skills = append(project.Skills, models.Skill{Name: name})
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Update modifies a project. Creator only; partial-update semantics. A
// non-empty skill list replaces the stored set, normalized; an empty or
// absent list leaves the stored skills untouched.
func (s *ProjectService) Update(p policy.Principal, id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project_not_found", "project not found")
		}
		return nil, err
	}

	if d := policy.CanModifyProject(p, project.CreatorID); !d.Allowed {
		return nil, forbidden(d)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return nil, response.NewValidation("invalid_budget", "budget must not be negative")
		}
		updates["budget"] = *req.Budget
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, response.NewValidation("invalid_deadline", "deadline must be a YYYY-MM-DD date")
		}
		updates["deadline"] = deadline
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	skills := normalizeSkills(req.Skills)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&project).Updates(updates).Error; err != nil {
				return err
			}
		}
		if len(skills) > 0 {
			if err := tx.Where("project_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
				return err
			}
			for _, name := range skills {
				if err := tx.Create(&models.Skill{Name: name, ProjectID: id}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes a project along with its applications and skills in one
// transaction. Creator only.
func (s *ProjectService) Delete(p policy.Principal, id uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project_not_found", "project not found")
		}
		return err
	}

	if d := policy.CanModifyProject(p, project.CreatorID); !d.Allowed {
		return forbidden(d)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// normalizeSkills trims, lowercases and deduplicates skill tags, dropping
// empties. Order of first occurrence is preserved.
func normalizeSkills(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, s := range raw {
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

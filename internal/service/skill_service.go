package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

const skillCatalogCacheKey = "skills:catalog"

type skillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	FindByID(ctx context.Context, id string) (*models.Skill, error)
	FindByName(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
	ListByUser(ctx context.Context, userID string) ([]models.Skill, error)
	ListTeachable(ctx context.Context) ([]models.Skill, error)
	Update(ctx context.Context, id string, update repository.SkillUpdate) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
	AddTeacher(ctx context.Context, id, userID string) (*models.Skill, error)
	AddLearner(ctx context.Context, id, userID string) (*models.Skill, error)
	RemoveLearner(ctx context.Context, id, userID string) (*models.Skill, error)
}

type skillCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SkillService handles skill catalog workflows. The full-catalog read goes
// through the cache; every catalog write invalidates it.
type SkillService struct {
	repo      skillRepository
	cache     skillCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewSkillService constructs the service. cache may be nil.
func NewSkillService(repo skillRepository, cache skillCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *SkillService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger, metrics: metrics}
}

// AddSkill creates a catalog entry, reusing an existing entry with the same
// trimmed name rather than inserting a duplicate.
func (s *SkillService) AddSkill(ctx context.Context, req dto.AddSkillRequest) (*models.Skill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "skillName is required")
	}

	name := strings.TrimSpace(req.SkillName)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "skillName is required")
	}

	skill, err := s.findOrCreate(ctx, name, req.Description)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return skill, nil
}

// ListAll returns the catalog ordered newest first, served from cache when
// fresh.
func (s *SkillService) ListAll(ctx context.Context) ([]models.Skill, error) {
	if s.cache != nil {
		var cached []models.Skill
		if err := s.cache.Get(ctx, skillCatalogCacheKey, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheHit()
			}
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("skill catalog cache read failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss()
		}
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skillCatalogCacheKey, skills, s.cacheTTL); err != nil {
			s.logger.Warn("skill catalog cache write failed", zap.Error(err))
		}
	}
	return skills, nil
}

// ListByUser returns skills the account teaches or is learning.
func (s *SkillService) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	skills, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list user skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// BrowseToLearn returns skills with at least one teacher.
func (s *SkillService) BrowseToLearn(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.repo.ListTeachable(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to browse skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// AddSkillToTeach finds or creates the named catalog entry, then idempotently
// adds the caller to its teaching set.
func (s *SkillService) AddSkillToTeach(ctx context.Context, userID string, req dto.TeachSkillRequest) (*models.Skill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "skillName is required")
	}

	name := strings.TrimSpace(req.SkillName)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "skillName is required")
	}

	skill, err := s.findOrCreate(ctx, name, nil)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.AddTeacher(ctx, skill.ID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add teaching skill")
	}
	s.invalidateCatalog(ctx)
	return updated, nil
}

// ExpressInterest idempotently adds the caller to a skill's learning set.
func (s *SkillService) ExpressInterest(ctx context.Context, skillID, userID string) (*models.Skill, error) {
	skill, err := s.repo.AddLearner(ctx, skillID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to express interest")
	}
	s.invalidateCatalog(ctx)
	return skill, nil
}

// RemoveInterest removes the caller from a skill's learning set. Removing
// interest never expressed leaves the set unchanged.
func (s *SkillService) RemoveInterest(ctx context.Context, skillID, userID string) (*models.Skill, error) {
	skill, err := s.repo.RemoveLearner(ctx, skillID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove interest")
	}
	s.invalidateCatalog(ctx)
	return skill, nil
}

// UpdateSkill applies a partial update. The path parameter wins over a body
// supplied id.
func (s *SkillService) UpdateSkill(ctx context.Context, skillID string, req dto.UpdateSkillRequest) (*models.Skill, error) {
	if skillID == "" {
		skillID = req.SkillID
	}
	if skillID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "skillId is required")
	}

	skill, err := s.repo.Update(ctx, skillID, repository.SkillUpdate{SkillName: req.SkillName, Description: req.Description})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update skill")
	}
	s.invalidateCatalog(ctx)
	return skill, nil
}

// DeleteSkill removes a catalog entry.
func (s *SkillService) DeleteSkill(ctx context.Context, skillID string) error {
	if skillID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "skillId is required")
	}
	if err := s.repo.Delete(ctx, skillID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete skill")
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *SkillService) findOrCreate(ctx context.Context, name string, description *string) (*models.Skill, error) {
	skill, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up skill")
	}

	created := &models.Skill{SkillName: name, Description: description}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create skill")
	}
	return created, nil
}

func (s *SkillService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, skillCatalogCacheKey); err != nil {
		s.logger.Warn("skill catalog cache invalidation failed", zap.Error(err))
	}
}

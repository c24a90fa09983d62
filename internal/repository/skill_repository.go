package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillswap/skillswap-api/internal/models"
)

const skillColumns = `id, skill_name, description, users_teaching, users_learning, created_at`

// SkillRepository provides database access for the skill catalog.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository creates a new instance of SkillRepository.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new catalog entry.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}
	if skill.UsersTeaching == nil {
		skill.UsersTeaching = pq.StringArray{}
	}
	if skill.UsersLearning == nil {
		skill.UsersLearning = pq.StringArray{}
	}

	const query = `INSERT INTO skills (id, skill_name, description, users_teaching, users_learning, created_at)
VALUES (:id, :skill_name, :description, :users_teaching, :users_learning, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, skill); err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

// FindByID returns a skill by identifier.
func (r *SkillRepository) FindByID(ctx context.Context, id string) (*models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1 LIMIT 1`, skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	return &skill, nil
}

// FindByName returns a skill by exact trimmed name.
func (r *SkillRepository) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE skill_name = $1 LIMIT 1`, skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find skill by name: %w", err)
	}
	return &skill, nil
}

// List returns the full catalog ordered by descending creation time.
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills ORDER BY created_at DESC`, skillColumns)
	var skills []models.Skill
	if err := r.db.SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// ListByUser returns skills the account teaches or is learning.
func (r *SkillRepository) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE $1 = ANY(users_teaching) OR $1 = ANY(users_learning)`, skillColumns)
	var skills []models.Skill
	if err := r.db.SelectContext(ctx, &skills, query, userID); err != nil {
		return nil, fmt.Errorf("list skills by user: %w", err)
	}
	return skills, nil
}

// ListTeachable returns skills with at least one teacher.
func (r *SkillRepository) ListTeachable(ctx context.Context) ([]models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE cardinality(users_teaching) > 0`, skillColumns)
	var skills []models.Skill
	if err := r.db.SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("list teachable skills: %w", err)
	}
	return skills, nil
}

// SkillUpdate carries the mutable catalog fields.
type SkillUpdate struct {
	SkillName   *string
	Description *string
}

// Update applies a partial update and returns the stored record.
func (r *SkillRepository) Update(ctx context.Context, id string, update SkillUpdate) (*models.Skill, error) {
	sets := []string{}
	args := []interface{}{id}

	if update.SkillName != nil {
		args = append(args, *update.SkillName)
		sets = append(sets, fmt.Sprintf("skill_name = $%d", len(args)))
	}
	if update.Description != nil {
		args = append(args, *update.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE skills SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return &skill, nil
}

// Delete removes a catalog entry. Returns sql.ErrNoRows when absent.
func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AddTeacher atomically adds an account to the teaching set. Duplicate adds
// leave the set unchanged.
func (r *SkillRepository) AddTeacher(ctx context.Context, id, userID string) (*models.Skill, error) {
	query := fmt.Sprintf(`UPDATE skills
SET users_teaching = CASE WHEN $2 = ANY(users_teaching) THEN users_teaching ELSE array_append(users_teaching, $2) END
WHERE id = $1
RETURNING %s`, skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("add teacher: %w", err)
	}
	return &skill, nil
}

// AddLearner atomically adds an account to the learning set.
func (r *SkillRepository) AddLearner(ctx context.Context, id, userID string) (*models.Skill, error) {
	query := fmt.Sprintf(`UPDATE skills
SET users_learning = CASE WHEN $2 = ANY(users_learning) THEN users_learning ELSE array_append(users_learning, $2) END
WHERE id = $1
RETURNING %s`, skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("add learner: %w", err)
	}
	return &skill, nil
}

// RemoveLearner atomically removes an account from the learning set. Removing
// an absent account is a no-op.
func (r *SkillRepository) RemoveLearner(ctx context.Context, id, userID string) (*models.Skill, error) {
	query := fmt.Sprintf(`UPDATE skills
SET users_learning = array_remove(users_learning, $2)
WHERE id = $1
RETURNING %s`, skillColumns)
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("remove learner: %w", err)
	}
	return &skill, nil
}

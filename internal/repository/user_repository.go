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

const userColumns = `id, name, email, password_hash, contact, college, professional_details, skills_teaching, skills_learning, current_sessions, bookmarks, created_at, updated_at`

// UserRepository provides database access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.SkillsTeaching == nil {
		user.SkillsTeaching = pq.StringArray{}
	}
	if user.SkillsLearning == nil {
		user.SkillsLearning = pq.StringArray{}
	}
	if user.CurrentSessions == nil {
		user.CurrentSessions = pq.StringArray{}
	}
	if user.Bookmarks == nil {
		user.Bookmarks = pq.StringArray{}
	}

	const query = `INSERT INTO users (id, name, email, password_hash, contact, college, professional_details, skills_teaching, skills_learning, current_sessions, bookmarks, created_at, updated_at)
VALUES (:id, :name, :email, :password_hash, :contact, :college, :professional_details, :skills_teaching, :skills_learning, :current_sessions, :bookmarks, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UserUpdate carries the mutable profile fields. Nil pointers and nil slices
// leave the stored value unchanged.
type UserUpdate struct {
	Name                *string
	Email               *string
	Contact             *string
	College             *string
	ProfessionalDetails *string
	SkillsTeaching      []string
	SkillsLearning      []string
}

// UpdateProfile applies a partial update and returns the stored record.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now().UTC()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.Contact != nil {
		add("contact", *update.Contact)
	}
	if update.College != nil {
		add("college", *update.College)
	}
	if update.ProfessionalDetails != nil {
		add("professional_details", *update.ProfessionalDetails)
	}
	if update.SkillsTeaching != nil {
		add("skills_teaching", pq.StringArray(update.SkillsTeaching))
	}
	if update.SkillsLearning != nil {
		add("skills_learning", pq.StringArray(update.SkillsLearning))
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

// AddTeachingSkills unions skill names into skills_teaching in a single
// statement and returns the resulting list.
func (r *UserRepository) AddTeachingSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	const query = `UPDATE users
SET skills_teaching = (SELECT ARRAY(SELECT DISTINCT s FROM unnest(skills_teaching || $2::text[]) AS s ORDER BY s)),
    updated_at = $3
WHERE id = $1
RETURNING skills_teaching`
	var result pq.StringArray
	if err := r.db.GetContext(ctx, &result, query, id, pq.StringArray(skills), time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("add teaching skills: %w", err)
	}
	return result, nil
}

// AddBookmark adds a recording id to the bookmark set. The add is idempotent
// and atomic: a duplicate id leaves the set unchanged.
func (r *UserRepository) AddBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	const query = `UPDATE users
SET bookmarks = CASE WHEN $2 = ANY(bookmarks) THEN bookmarks ELSE array_append(bookmarks, $2) END,
    updated_at = $3
WHERE id = $1
RETURNING bookmarks`
	var result pq.StringArray
	if err := r.db.GetContext(ctx, &result, query, id, recordingID, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("add bookmark: %w", err)
	}
	return result, nil
}

// RemoveBookmark removes a recording id from the bookmark set. Removing an
// absent id is a no-op.
func (r *UserRepository) RemoveBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	const query = `UPDATE users
SET bookmarks = array_remove(bookmarks, $2), updated_at = $3
WHERE id = $1
RETURNING bookmarks`
	var result pq.StringArray
	if err := r.db.GetContext(ctx, &result, query, id, recordingID, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("remove bookmark: %w", err)
	}
	return result, nil
}

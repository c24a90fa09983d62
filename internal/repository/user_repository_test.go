package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func userRows(id, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "contact", "college", "professional_details", "skills_teaching", "skills_learning", "current_sessions", "bookmarks", "created_at", "updated_at"}).
		AddRow(id, "Asha", email, "hash", nil, nil, nil, "{go}", "{rust}", "{}", "{}", now, now)
}

func TestUserFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, contact, college, professional_details, skills_teaching, skills_learning, current_sessions, bookmarks, created_at, updated_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("asha@example.com").
		WillReturnRows(userRows("u1", "asha@example.com"))

	user, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, []string{"go"}, []string(user.SkillsTeaching))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))

	user := &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotNil(t, user.SkillsTeaching)
	assert.NotNil(t, user.Bookmarks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateProfilePartial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	name := "Renamed"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = $2, name = $3 WHERE id = $1 RETURNING")).
		WithArgs("u1", sqlmock.AnyArg(), name).
		WillReturnRows(userRows("u1", "asha@example.com"))

	user, err := repo.UpdateProfile(context.Background(), "u1", UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAddTeachingSkills(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"skills_teaching"}).AddRow("{go,rust}")
	mock.ExpectQuery("UPDATE users").
		WithArgs("u1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	skills, err := repo.AddTeachingSkills(context.Background(), "u1", []string{"rust"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAddBookmark(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"bookmarks"}).AddRow("{r1}")
	mock.ExpectQuery(regexp.QuoteMeta("CASE WHEN $2 = ANY(bookmarks) THEN bookmarks ELSE array_append(bookmarks, $2) END")).
		WithArgs("u1", "r1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	bookmarks, err := repo.AddBookmark(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, bookmarks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRemoveBookmark(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"bookmarks"}).AddRow("{}")
	mock.ExpectQuery(regexp.QuoteMeta("array_remove(bookmarks, $2)")).
		WithArgs("u1", "r1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	bookmarks, err := repo.RemoveBookmark(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

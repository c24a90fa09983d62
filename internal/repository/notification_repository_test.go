package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/models"
)

func TestNotificationCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectExec("INSERT INTO notifications").WillReturnResult(sqlmock.NewResult(1, 1))

	userID := "u1"
	notification := &models.Notification{UserID: &userID, Subject: "Welcome", Message: "Hello"}
	err := repo.Create(context.Background(), notification)
	require.NoError(t, err)
	assert.NotEmpty(t, notification.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationListByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "subject", "message", "read", "created_at", "updated_at"}).
		AddRow("n1", "u1", "Welcome", "Hello", false, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications WHERE user_id = $1 ORDER BY created_at DESC")).
		WithArgs("u1").
		WillReturnRows(rows)

	notifications, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Welcome", notifications[0].Subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/novareservas/reservation-api/internal/db"
	"github.com/novareservas/reservation-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})

	return db
}

func seedClient(t *testing.T, db *gorm.DB, name, email string) uint {
	t.Helper()

	client := models.Client{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&client).Error)
	return client.ID
}

func seedService(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	svc := models.Service{Name: name, Description: "test service"}
	require.NoError(t, db.Create(&svc).Error)
	return svc.ID
}

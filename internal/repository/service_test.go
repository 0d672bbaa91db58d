package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "Haircut", "30 minute cut")
	require.NoError(t, err)
	require.NotZero(t, id)

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "Haircut", services[0].Name)
	require.Equal(t, "30 minute cut", services[0].Description)
}

func TestService_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "Haircut", "")
	require.NoError(t, err)

	affected, err := repo.Update(ctx, id, "Beard trim", "15 minutes")
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Beard trim", services[0].Name)
	require.Equal(t, "15 minutes", services[0].Description)
}

func TestService_UpdateMissingID(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository(db)

	affected, err := repo.Update(context.Background(), 999, "x", "y")
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestService_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "Haircut", "")
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	require.Zero(t, affected)
}

// Deleting a service leaves referencing reservations in place; the
// dangling rows simply disappear from joined listings.
func TestService_DeleteLeavesReservationsDangling(t *testing.T) {
	db := newTestDB(t)
	services := NewServiceRepository(db)
	reservations := NewReservationRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Ana", "ana@x.com")
	serviceID, err := services.Create(ctx, "Haircut", "")
	require.NoError(t, err)

	_, err = reservations.Create(ctx, clientID, serviceID, "2026-09-01", "pending")
	require.NoError(t, err)

	_, err = services.Delete(ctx, serviceID)
	require.NoError(t, err)

	rows, err := reservations.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)

	var count int64
	require.NoError(t, db.Table("reservations").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

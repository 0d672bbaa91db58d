package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/novareservas/reservation-api/internal/httperr"
	"github.com/novareservas/reservation-api/internal/models"
)

// ReservationRow is the read shape for listings: the reservation joined
// with the names of its client and service.
type ReservationRow struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a reservation and returns its id. client_id and
// service_id are taken as given; existence is not checked.
func (r *ReservationRepository) Create(
	ctx context.Context,
	clientID uint,
	serviceID uint,
	date string,
	status string,
) (uint, error) {

	res := models.Reservation{
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      date,
		Status:    status,
	}

	if err := r.db.WithContext(ctx).Create(&res).Error; err != nil {
		return 0, httperr.Store(err)
	}
	return res.ID, nil
}

// ListAll returns every reservation joined against clients and
// services. Inner-join semantics: a reservation whose client or service
// row is missing is omitted, not padded with nulls.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]ReservationRow, error) {
	var rows []ReservationRow

	err := r.db.WithContext(ctx).
		Table("reservations").
		Select(`reservations.id,
			clients.name AS client_name,
			services.name AS service_name,
			reservations.date,
			reservations.status`).
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Joins("JOIN services ON services.id = reservations.service_id").
		Order("reservations.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, httperr.Store(err)
	}

	if rows == nil {
		rows = []ReservationRow{}
	}
	return rows, nil
}

// Update overwrites all four mutable fields. Zero affected rows means
// no reservation matched id; the caller decides what that means.
func (r *ReservationRepository) Update(
	ctx context.Context,
	id uint,
	clientID uint,
	serviceID uint,
	date string,
	status string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"client_id":  clientID,
			"service_id": serviceID,
			"date":       date,
			"status":     status,
		})
	if res.Error != nil {
		return 0, httperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return 0, httperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}

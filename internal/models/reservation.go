package models

import "time"

// Reservation links a client to a service on a date. Date is stored as
// caller-supplied text and Status is free text; neither is validated.
// The foreign keys are declared but existence is not checked before
// insert, so a reservation can outlive its client or service.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;" json:"-"`

	Date   string `gorm:"size:50" json:"date"`
	Status string `gorm:"size:50" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

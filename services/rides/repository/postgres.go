package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RideRepository implements rides.RideRepo over PostgreSQL
type RideRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepository {
	return &RideRepository{
		cfg: cfg,
		db:  db,
	}
}

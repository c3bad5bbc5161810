package usecase

import (
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
)

// rideUC implements rides.RideUC. It is the only place ride and booking
// status transitions are decided; handlers and workers just route.
type rideUC struct {
	cfg   *models.Config
	repo  rides.RideRepo
	cache rides.RideCache
	gw    rides.RideGW
}

// NewRideUC creates a new rides usecase
func NewRideUC(cfg *models.Config, repo rides.RideRepo, cache rides.RideCache, gw rides.RideGW) rides.RideUC {
	return &rideUC{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		gw:    gw,
	}
}

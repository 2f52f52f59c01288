package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// LocationGW forwards samples received over HTTP onto the live position feed
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleettrack/services/location LocationGW
type LocationGW interface {
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
}

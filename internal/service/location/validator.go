package location

import (
	"fmt"

	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/pkg/geo"
)

type geofenceValidator struct{}

// NewValidator creates the standard geofence validator.
func NewValidator() location.Validator {
	return &geofenceValidator{}
}

// Validate applies the accuracy gate first, then checks geofence membership.
// The first authorized location containing the fix wins.
func (v *geofenceValidator) Validate(fix location.Fix, authorized []location.AuthorizedLocation, accuracyThreshold float64) location.Decision {
	if accuracyThreshold <= 0 {
		accuracyThreshold = location.DefaultAccuracyThreshold
	}

	if fix.Accuracy > accuracyThreshold {
		return location.Decision{
			Accepted: false,
			Reason: fmt.Sprintf(
				"insufficient accuracy: ±%.0fm reported, ±%.0fm required",
				fix.Accuracy, accuracyThreshold,
			),
		}
	}

	// No geofence configured means the attempt is not location restricted.
	if len(authorized) == 0 {
		return location.Decision{Accepted: true}
	}

	for _, loc := range authorized {
		radius := loc.RadiusMeters
		if radius <= 0 {
			radius = location.DefaultRadiusMeters
		}

		distance := geo.Distance(fix.Latitude, fix.Longitude, loc.Latitude, loc.Longitude)
		if distance <= radius {
			return location.Decision{Accepted: true}
		}
	}

	return location.Decision{
		Accepted: false,
		Reason:   "outside authorized work area",
	}
}

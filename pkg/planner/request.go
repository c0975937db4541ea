package planner

import (
	"time"

	"github.com/mkarren/astrogate/pkg/validation"
	"github.com/mkarren/astrogate/pkg/worldgraph"
)

// NavigationRequest describes one planning call. It is a pure input value
// and is not retained after Plan returns.
type NavigationRequest struct {
	Origin         string                `json:"origin" validate:"required"`
	Destination    string                `json:"destination" validate:"required"`
	PreferredStyle worldgraph.RouteStyle `json:"preferred_style,omitempty" validate:"omitempty,routestyle"`
	FuelCapacity   float64               `json:"fuel_capacity" validate:"required,gt=0"`
	MaxRisk        float64               `json:"max_risk_tolerance" validate:"gte=0,lte=1"`

	// TimeConstraint caps aggregate travel time when positive. Zero means no
	// time limit. This is a planning-time filter, not a runtime deadline.
	TimeConstraint time.Duration `json:"time_constraint,omitempty" validate:"gte=0"`
}

// Validate checks the request's structural constraints.
func (r *NavigationRequest) Validate() error {
	return validation.ValidateStruct(r)
}

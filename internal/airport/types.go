package airport

import "github.com/paulmach/orb"

// CheckQuery binds the proximity check parameters.
type CheckQuery struct {
	Lon     *float64 `form:"lon" binding:"required,longitude"`
	Lat     *float64 `form:"lat" binding:"required,latitude"`
	BufferM *float64 `form:"buffer_m" binding:"omitempty,gte=0"`
}

// CheckResponse is the payload of GET /api/v1/airport/check.
type CheckResponse struct {
	Status         string    `json:"status"`
	DistanceM      float64   `json:"distance_m"`
	ClosestAirport orb.Point `json:"closest_airport_lonlat"`
	BufferM        float64   `json:"buffer_m"`
}

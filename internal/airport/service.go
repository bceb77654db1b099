// Package airport answers whether a point sits too close to an aerodrome,
// using a local KML or KMZ file as the reference dataset.
package airport

import (
	"math"

	"github.com/Tanvoile/site-geo-mvp/platform/apperr"
	"github.com/Tanvoile/site-geo-mvp/platform/config"
	"github.com/Tanvoile/site-geo-mvp/platform/geo"
	"github.com/Tanvoile/site-geo-mvp/platform/kml"
	"github.com/Tanvoile/site-geo-mvp/platform/logger"

	"github.com/paulmach/orb"
)

// DefaultBufferM is the proximity threshold applied when the caller gives
// no buffer.
const DefaultBufferM = 1000.0

// Check outcomes.
const (
	StatusClear    = "OK"
	StatusTooClose = "KO"
)

// Service runs the proximity check.
type Service struct {
	cfg config.AirportConfig
	log *logger.Logger
}

func NewService(cfg config.AirportConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// Check compares p against every aerodrome point in the configured file.
// The file is re-read on each request so operators can swap it without a
// restart.
func (s *Service) Check(p orb.Point, bufferM float64) (*CheckResponse, error) {
	path := s.cfg.GetAirportKMLPath()
	if path == "" {
		return nil, apperr.Internal("airport check is not configured (AIRPORT_KML_PATH)")
	}

	points, err := kml.LoadPoints(path)
	if err != nil {
		s.log.Error("airport dataset unreadable", "path", path, "error", err)
		return nil, apperr.Wrap(apperr.KindInternal, err.Error(), err)
	}

	closest, distance := nearest(p, points)

	status := StatusClear
	if distance < bufferM {
		status = StatusTooClose
	}

	return &CheckResponse{
		Status:         status,
		DistanceM:      math.Round(distance*100) / 100,
		ClosestAirport: closest,
		BufferM:        bufferM,
	}, nil
}

// nearest scans candidates linearly for the smallest planar distance.
func nearest(p orb.Point, candidates []orb.Point) (orb.Point, float64) {
	best := candidates[0]
	bestDistance := geo.PlanarDistance(p, best)
	for _, candidate := range candidates[1:] {
		if d := geo.PlanarDistance(p, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best, bestDistance
}

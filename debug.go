package mapview

import (
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is how many drawn frames pass between stats lines.
const debugLogInterval = 60

// drawStats holds per-frame draw metrics. Only collected in debug mode.
type drawStats struct {
	drawTime   time.Duration
	tilesDrawn int
}

// SetDebugMode enables per-frame draw timing, logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.debugFrame = 0
}

// debugLog reports draw stats once every debugLogInterval frames.
func (s *Scene) debugLog(stats drawStats) {
	if !s.debug {
		return
	}
	s.debugFrame++
	if s.debugFrame%debugLogInterval != 1 {
		return
	}
	s.log.Debug("draw stats",
		zap.Duration("draw", stats.drawTime),
		zap.Int("drawn", stats.tilesDrawn),
		zap.Int("tiles", len(s.tiles)))
}

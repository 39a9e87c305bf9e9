package maze

import "github.com/Garsondee/dungeon-chase/internal/engine"

// FollowPlayer centres the camera on the player's tile. Tracking is instant
// and runs every frame, independent of the tick.
func (s *Sim) FollowPlayer() {
	ts := float64(s.m.TileSizePx)
	s.cam = engine.Camera{
		TargetX: float64(s.playerX)*ts + ts/2,
		TargetY: float64(s.playerY)*ts + ts/2,
		OffsetX: float64(s.viewW) / 2,
		OffsetY: float64(s.viewH) / 2,
	}
}

// Camera returns the camera as of the last FollowPlayer call.
func (s *Sim) Camera() engine.Camera {
	return s.cam
}

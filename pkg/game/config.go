package game

import "time"

const (
	DefaultWidth      = 10
	DefaultHeight     = 20
	DefaultBufferRows = 4
	DefaultFPS        = 30
)

// Config carries the construction-time parameters of a game. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	Width      int
	Height     int
	BufferRows int

	// BaseInterval is the gravity interval at level 0. Each level
	// multiplies it by 0.85, floored at MinInterval.
	BaseInterval time.Duration
	MinInterval  time.Duration

	// LockDelay is reserved for a grace period between a piece landing
	// and locking. Tick currently locks on the first failed gravity
	// step and never grants it.
	LockDelay time.Duration

	// FPS is the frame rate target of the control loop.
	FPS int
}

func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BufferRows:   DefaultBufferRows,
		BaseInterval: time.Second,
		MinInterval:  50 * time.Millisecond,
		LockDelay:    500 * time.Millisecond,
		FPS:          DefaultFPS,
	}
}

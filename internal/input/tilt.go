package input

import (
	"context"
	"sync"
)

// PermissionFunc requests access to the tilt capability. A nil error grants
// it; any error (or a cancelled context) denies it.
type PermissionFunc func(ctx context.Context) error

// TiltSource adapts a device tilt angle to a steering signal. The capability
// must be granted before the source is consulted: permission is requested
// asynchronously, never blocks the simulation loop, and a denial leaves the
// source permanently unconsulted.
//
// SetAngle and Signal may run on different goroutines; the permission result
// arrives on a third.
type TiltSource struct {
	mu       sync.Mutex
	deadzone float64
	angle    float64
	granted  bool
	decided  bool
}

// NewTiltSource creates a tilt source. Angles within deadzone of level
// produce no steering.
func NewTiltSource(deadzone float64) *TiltSource {
	return &TiltSource{deadzone: deadzone}
}

// RequestPermission asks for the tilt capability in the background. The first
// decision is final: repeated calls after a denial or grant do nothing.
func (t *TiltSource) RequestPermission(ctx context.Context, ask PermissionFunc) {
	t.mu.Lock()
	if t.decided {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	go func() {
		err := ask(ctx)

		t.mu.Lock()
		defer t.mu.Unlock()
		if t.decided {
			return
		}
		t.decided = true
		t.granted = err == nil
	}()
}

// SetAngle records the latest tilt reading. Negative tilts left, positive
// tilts right.
func (t *TiltSource) SetAngle(angle float64) {
	t.mu.Lock()
	t.angle = angle
	t.mu.Unlock()
}

// Granted reports whether the capability has been granted.
func (t *TiltSource) Granted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.decided && t.granted
}

// Signal reduces the current angle to a steering signal. The source is not
// consulted until permission is granted.
func (t *TiltSource) Signal() (Signal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.decided || !t.granted {
		return Signal{}, false
	}
	switch {
	case t.angle < -t.deadzone:
		return Signal{Left: true}, true
	case t.angle > t.deadzone:
		return Signal{Right: true}, true
	}
	return Signal{}, true
}

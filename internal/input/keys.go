package input

// KeySource adapts terminal key events to a steering signal. Terminals report
// no key-up events, so a press arms a direction for a fixed number of ticks
// and terminal auto-repeat keeps it refreshed while the key is held.
type KeySource struct {
	holdTicks int
	leftTTL   int
	rightTTL  int
}

// DefaultHoldTicks covers the auto-repeat delay of common terminals at 60
// ticks per second.
const DefaultHoldTicks = 12

// NewKeySource creates a key source whose directions stay asserted for
// holdTicks ticks after each press.
func NewKeySource(holdTicks int) *KeySource {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeySource{holdTicks: holdTicks}
}

// PressLeft arms the left direction and releases the right one.
func (k *KeySource) PressLeft() {
	k.leftTTL = k.holdTicks
	k.rightTTL = 0
}

// PressRight arms the right direction and releases the left one.
func (k *KeySource) PressRight() {
	k.rightTTL = k.holdTicks
	k.leftTTL = 0
}

// Release clears both directions immediately.
func (k *KeySource) Release() {
	k.leftTTL = 0
	k.rightTTL = 0
}

// Tick advances the hold window by one simulation tick.
func (k *KeySource) Tick() {
	if k.leftTTL > 0 {
		k.leftTTL--
	}
	if k.rightTTL > 0 {
		k.rightTTL--
	}
}

// Signal reports the currently armed directions. Key input is always
// consulted.
func (k *KeySource) Signal() (Signal, bool) {
	return Signal{Left: k.leftTTL > 0, Right: k.rightTTL > 0}, true
}

package sim

// Button is one of the two logical inputs the simulation understands.
type Button int

const (
	ButtonJump Button = iota
	ButtonCrouch
	buttonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonJump:
		return "jump"
	case ButtonCrouch:
		return "crouch"
	default:
		return "unknown"
	}
}

// MotionCommands is the set of commands a Binding drives.
// *Motion implements it.
type MotionCommands interface {
	StartJump()
	ReleaseJump()
	StartCrouch()
	ReleaseCrouch()
}

// Binding turns button edges into motion commands.
// Repeated presses without a release in between are dropped.
type Binding struct {
	cmds MotionCommands
	down [buttonCount]bool
}

// NewBinding creates a binding that forwards to cmds.
func NewBinding(cmds MotionCommands) *Binding {
	return &Binding{cmds: cmds}
}

// Press reports a button going down.
func (b *Binding) Press(btn Button) {
	if !valid(btn) || b.down[btn] {
		return
	}
	b.down[btn] = true
	if b.cmds == nil {
		return
	}
	switch btn {
	case ButtonJump:
		b.cmds.StartJump()
	case ButtonCrouch:
		b.cmds.StartCrouch()
	}
}

// Release reports a button going up.
func (b *Binding) Release(btn Button) {
	if !valid(btn) || !b.down[btn] {
		return
	}
	b.down[btn] = false
	if b.cmds == nil {
		return
	}
	switch btn {
	case ButtonJump:
		b.cmds.ReleaseJump()
	case ButtonCrouch:
		b.cmds.ReleaseCrouch()
	}
}

// Apply takes the level state of both buttons for this frame and emits
// whatever edges changed since the previous call.
func (b *Binding) Apply(jumpDown, crouchDown bool) {
	b.set(ButtonJump, jumpDown)
	b.set(ButtonCrouch, crouchDown)
}

func (b *Binding) set(btn Button, down bool) {
	if down {
		b.Press(btn)
	} else {
		b.Release(btn)
	}
}

// Down reports whether the button is currently held.
func (b *Binding) Down(btn Button) bool {
	return valid(btn) && b.down[btn]
}

// Reset forgets held buttons without sending any commands.
func (b *Binding) Reset() {
	b.down = [buttonCount]bool{}
}

func valid(btn Button) bool {
	return btn >= 0 && btn < buttonCount
}

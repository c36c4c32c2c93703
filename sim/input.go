package sim

// InputState is a single tick's sampled intent. Forward and Strafe are signed
// axes with magnitude <= 1 after normalization; Yaw and Pitch are absolute
// look angles in radians at sample time. A captured input is never rewritten:
// it is historical fact replay depends on.
type InputState struct {
	Forward float32
	Strafe  float32

	Jump   bool
	Sprint bool
	Sneak  bool

	Yaw   float32
	Pitch float32
}

// NeutralInput returns the input used when a tick's real sample is missing
// during replay: no movement, look angles preserved from the given state.
func NeutralInput(st PlayerState) InputState {
	return InputState{Yaw: st.Yaw, Pitch: st.Pitch}
}

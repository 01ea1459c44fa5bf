package core

// Action is a semantic input the game reacts to, independent of the key
// that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow: move paddle left
	ActionRight          // D, Right arrow: move paddle right
	ActionUp             // W, Up arrow: menu navigation
	ActionDown           // S, Down arrow: menu navigation
	ActionLaunch         // Space: launch the ball
	ActionConfirm        // Enter
	ActionBack           // B, Escape: back to menu
	ActionRestart        // R: restart after game over
	ActionPause          // P: pause or resume
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLaunch:  "Launch",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	actions uint32
}

// NewInputFrame creates an empty frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a > ActionQuit {
		return
	}
	f.actions |= 1 << uint(a)
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && f.actions&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.actions == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = 0
}

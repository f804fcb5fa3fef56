package domain

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a Rotation.
type State int

const (
	// StateIdle: no items, or auto-advance disabled. No timer is pending.
	StateIdle State = iota
	// StateRunning: the auto-advance timer is armed.
	StateRunning
	// StatePaused: auto-advance suspended by Pause, a drag, or a post-interaction cooldown.
	StatePaused
	// StateStopped is terminal; reached through Teardown.
	StateStopped
)

var stateNames = map[State]string{
	StateIdle:    "idle",
	StateRunning: "running",
	StatePaused:  "paused",
	StateStopped: "stopped",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText renders the state by name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a point-in-time copy of a rotation's observable state.
type Snapshot struct {
	State     State   `json:"state"`
	Index     int     `json:"index"`
	Total     int     `json:"total"`
	Direction int     `json:"direction"`
	Paused    bool    `json:"paused"`
	Cooling   bool    `json:"cooling"`
	Dragging  bool    `json:"dragging"`
	Offset    float64 `json:"offset"`

	LastInteraction time.Time `json:"last_interaction,omitempty"`
}

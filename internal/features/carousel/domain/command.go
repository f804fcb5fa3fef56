package domain

// Action names an interaction command sent to a carousel.
type Action string

const (
	ActionNext      Action = "next"
	ActionPrevious  Action = "previous"
	ActionGoTo      Action = "goto"
	ActionPause     Action = "pause"
	ActionResume    Action = "resume"
	ActionDragStart Action = "drag-start"
	ActionDragMove  Action = "drag-move"
	ActionDragEnd   Action = "drag-end"
)

// Command is one inbound interaction. Index is read by ActionGoTo, X by the drag actions.
type Command struct {
	Action Action  `json:"action"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
}

// Valid reports whether the action is known.
func (a Action) Valid() bool {
	switch a {
	case ActionNext, ActionPrevious, ActionGoTo, ActionPause, ActionResume,
		ActionDragStart, ActionDragMove, ActionDragEnd:
		return true
	}
	return false
}

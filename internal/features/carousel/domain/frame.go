package domain

import "time"

// Frame is what a render sink emits after an index change: enough for a client to move
// its track and highlight the matching dot.
type Frame struct {
	Section    string    `json:"section"`
	Index      int       `json:"index"`
	Total      int       `json:"total"`
	RenderedAt time.Time `json:"rendered_at"`
}

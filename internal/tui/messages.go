package tui

import "time"

// Message types for the TUI

// FrameMsg drives the animation loop. Every timer the coordinator owns
// runs from here, on the update goroutine.
type FrameMsg struct {
	At time.Time
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

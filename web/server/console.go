package server

import (
	"time"

	"github.com/rs/zerolog"
)

// ConsoleMessage is a log line forwarded to the browser console of a render
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warn", "error"
}

// ConsoleHook copies every message logged through a render's logger onto a channel
type ConsoleHook struct {
	messages chan<- ConsoleMessage
}

// NewConsoleHook creates a hook that feeds messages
func NewConsoleHook(messages chan<- ConsoleMessage) ConsoleHook {
	return ConsoleHook{messages: messages}
}

// Run implements zerolog.Hook
func (h ConsoleHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if h.messages == nil || msg == "" {
		return
	}

	select {
	case h.messages <- ConsoleMessage{
		Message:   msg,
		Timestamp: time.Now(),
		Level:     level.String(),
	}:
	default:
		// Channel full, skip (don't block)
	}
}

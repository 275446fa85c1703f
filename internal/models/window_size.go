package models

import (
	"fmt"
	"time"
)

// WindowSize is the width of one requests_over_time bucket.
type WindowSize string

const (
	WindowMinute WindowSize = "minute"
	WindowHour   WindowSize = "hour"
)

// NewWindowSizeFromString parses a config value into a WindowSize.
func NewWindowSizeFromString(s string) (WindowSize, error) {
	switch WindowSize(s) {
	case WindowMinute:
		return WindowMinute, nil
	case WindowHour:
		return WindowHour, nil
	default:
		return "", fmt.Errorf("invalid window size: %q", s)
	}
}

func (w WindowSize) Duration() time.Duration {
	switch w {
	case WindowMinute:
		return time.Minute
	case WindowHour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid WindowSize: %q", w))
	}
}

// Truncate returns the start instant of the bucket containing t, in UTC.
func (w WindowSize) Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(w.Duration())
}

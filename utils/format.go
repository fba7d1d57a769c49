package utils

import (
	"fmt"
	"time"
)

// MessageType selects the color a CLI message is printed with.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI color sequences used for the terminal output.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// Prefix is printed in front of every status line.
const Prefix = "⚡ ARCBAR"

var msgColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	StatusMessage:  StatusColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
}

// DecorateText wraps s in the color of msgType and resets the color afterwards.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	c, ok := msgColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// StatusMsg builds a prefixed status line, used while an operation is running.
func StatusMsg(msg string) string {
	return DecorateText(Prefix, StatusMessage) + " " + DecorateText("⇢ "+msg, DefaultMessage)
}

// SuccessMsg builds a prefixed line reporting a finished operation.
func SuccessMsg(msg string) string {
	return DecorateText(Prefix, StatusMessage) + " " +
		DecorateText("⇢", DefaultMessage) + " " +
		DecorateText(msg, SuccessMessage)
}

// ErrorMsg builds a prefixed line reporting a failed operation.
func ErrorMsg(msg string) string {
	return DecorateText(Prefix, StatusMessage) + " " +
		DecorateText(msg, DefaultMessage) + " " +
		DecorateText("✘\n", ErrorMessage)
}

// FormatTime prints d with two decimals of seconds, prefixed by the
// whole days, hours and minutes it spans.
func FormatTime(d time.Duration) string {
	secs := d.Seconds() - float64(int64(d/time.Minute))*60
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d/time.Minute), secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", int64(d/time.Hour), int64(d/time.Minute)%60, secs)
	}
	day := 24 * time.Hour
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d/day), int64(d/time.Hour)%24, int64(d/time.Minute)%60, secs)
}

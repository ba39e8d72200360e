package game

import "strings"

// MsgPriority controls the colour of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo      MsgPriority = iota // cyan
	MsgWarning                      // yellow
	MsgCritical                     // red
	MsgDiscovery                    // green
	MsgDelivery                     // white
)

// Message is a single entry in the comms log.
type Message struct {
	Tick     uint64
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of player-facing messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines,
// wrapping text at width characters (0 disables wrapping).
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends a message, evicting the oldest lines if full.
func (l *MessageLog) Add(tick uint64, text string, priority MsgPriority) {
	for _, line := range wrapText(text, l.width) {
		msg := Message{Tick: tick, Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits text into lines no longer than width, breaking on spaces.
func wrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}

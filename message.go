package celvalidate

import (
	"fmt"
	"sort"
)

// Level classifies the severity of a validation message.
type Level int

const (
	// Info messages are supplementary and do not indicate a problem.
	Info Level = iota + 1
	// Warn messages indicate a problem that does not stop validation.
	Warn
	// Error messages indicate a structural problem that aborts validation
	// of the current file.
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "INF"
	case Warn:
		return "WRN"
	default:
		return "ERR"
	}
}

// Message is a single positioned diagnostic produced during validation.
// Line is 1-based; Pos is the 0-based column within the line.
type Message struct {
	Line  int
	Pos   int
	Level Level
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("%s (%d:%d) %s", m.Level, m.Line, m.Pos, m.Text)
}

// sortMessages orders messages by source position. Messages at the same
// position keep their emission order, so the sort must be stable.
func sortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Line != msgs[j].Line {
			return msgs[i].Line < msgs[j].Line
		}
		return msgs[i].Pos < msgs[j].Pos
	})
}

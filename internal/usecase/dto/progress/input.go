package progress

import "time"

type InitProgressInput struct {
	TerminalSN string
	AgentID    int64
	TemplateID int64
	// BindTime defaults to now; binding events replayed from the terminal
	// service carry the original bind time.
	BindTime *time.Time
}

type AdvanceInput struct {
	TerminalSN    string
	ObservedValue int64
}

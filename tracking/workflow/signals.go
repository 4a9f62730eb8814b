package workflow

const (
	// Signal names
	PauseSessionSignalName  = "pause-session"
	ResumeSessionSignalName = "resume-session"
	StopSessionSignalName   = "stop-session"
)

// PauseSessionSignal pauses the auto-persist loop for a running session.
// The session row itself is transitioned by the API layer before the signal
// is sent; the workflow only stops ticking.
type PauseSessionSignal struct {
	PausedBy string `json:"paused_by"`
}

// ResumeSessionSignal re-arms the auto-persist loop.
type ResumeSessionSignal struct {
	ResumedBy string `json:"resumed_by"`
}

// StopSessionSignal ends the workflow after the session was completed.
type StopSessionSignal struct {
	Reason    string `json:"reason"`
	StoppedBy string `json:"stopped_by"`
}

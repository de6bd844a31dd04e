package event

const (
	// Channel carries every seeder event.
	Channel = "healthbridge:seeder"

	TypeRunCompleted = "seeder.run.completed"
)

// RunCompleted is published once per command run.
type RunCompleted struct {
	RunID      string `json:"runId"`
	Command    string `json:"command"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
	DurationMs int64  `json:"durationMs"`
}

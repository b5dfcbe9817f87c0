package paramselect

// Meter observes selection events for monitoring/logging.
type Meter interface {
	// OnSelect is called once per parameter during a resolution.
	OnSelect(event SelectEvent)
}

// SelectEvent describes the outcome of selecting one parameter.
type SelectEvent struct {
	ResolutionID string
	Parameter    string
	Value        string
	Selected     bool
	Required     bool
	Offered      int
}

package meter

import "github.com/ineyio/paramselect"

// NoopMeter is a meter that does nothing.
type NoopMeter struct{}

var _ paramselect.Meter = (*NoopMeter)(nil)

func (m *NoopMeter) OnSelect(paramselect.SelectEvent) {}

package meter

import (
	"log/slog"

	"github.com/ineyio/paramselect"
)

// LogMeter logs selection events using slog.
type LogMeter struct {
	Logger *slog.Logger
}

var _ paramselect.Meter = (*LogMeter)(nil)

// NewLogMeter creates a LogMeter with the given logger.
// If logger is nil, slog.Default() is used.
func NewLogMeter(logger *slog.Logger) *LogMeter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMeter{Logger: logger}
}

func (m *LogMeter) OnSelect(e paramselect.SelectEvent) {
	if e.Selected {
		m.Logger.Info("select",
			"resolution", e.ResolutionID,
			"parameter", e.Parameter,
			"value", e.Value,
			"offered", e.Offered,
		)
		return
	}

	m.Logger.Warn("select_none",
		"resolution", e.ResolutionID,
		"parameter", e.Parameter,
		"required", e.Required,
		"offered", e.Offered,
	)
}

package kit

import "go.uber.org/zap"

// NewLogger builds the service logger. Development mode switches to the
// human-readable console encoder.
func NewLogger(service string, development bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]any{"service": service}
	l, _ := cfg.Build()
	return l
}

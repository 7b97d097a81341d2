package pure

import "go.uber.org/zap"

// Config carries the per-cache policy. The zero value is usable.
type Config struct {
	Normalizer Normalizer  // default: Default
	Logger     *zap.Logger // default: no-op
}

// NewConfig fills unset fields with their defaults.
func NewConfig(normalizer Normalizer, logger *zap.Logger) Config {
	if normalizer == nil {
		normalizer = Default
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		Normalizer: normalizer,
		Logger:     logger,
	}
}

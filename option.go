package wfc

import "github.com/katalvlaran/wfc/logging"

// modelConfig holds the ambient, non-solving-semantics settings a Model
// can be built with.
type modelConfig struct {
	logger *logging.Logger
}

// Option customizes a Model's ambient behavior (currently: logging). As a
// rule, option constructors never panic and ignore nil inputs.
type Option func(cfg *modelConfig)

// WithLogger attaches a logger to the Model. A nil logger is a no-op,
// leaving the Model silent.
func WithLogger(l *logging.Logger) Option {
	return func(cfg *modelConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

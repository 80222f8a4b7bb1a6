package app

import "go.uber.org/zap"

// App is what every CLI command runs against: the loaded configuration, the
// logger and the wired services.
type App struct {
	*Wire
	Config *Config
	Log    *zap.Logger
}

// New wires the services described by cfg.
func New(cfg *Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := NewWire(*cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{Wire: w, Config: cfg, Log: log}, nil
}

package app

// App is the context shared by CLI commands.
type App struct {
	Config Config
	*Wire
}

// New wires an App from cfg.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}

package config

// DefaultStateFile is where the pipeline keeps the global state, relative to
// the project directory.
const DefaultStateFile = "snap/.snapcraft/state"

func applyDefaults(cfg *Config) {
	if cfg.State.File == "" {
		cfg.State.File = DefaultStateFile
	}
}

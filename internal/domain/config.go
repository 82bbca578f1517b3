package domain

// Config mirrors ~/.spinit/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Execution           ExecutionSettings `yaml:"execution"`
	History             HistorySettings   `yaml:"history"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	// Shell used for `sh -c` style execution. Empty falls back to $SHELL,
	// then /bin/sh.
	Shell string `yaml:"shell"`
	// TimeoutSeconds bounds a run; zero disables the bound.
	TimeoutSeconds int `yaml:"timeout"`
}

// HistorySettings controls run-outcome recording.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
	// Path of the history database. Empty uses ~/.spinit/history/history.db.
	Path string `yaml:"path"`
}

package config

import "os"

const (
	defaultStateDir           = "~/.local/share/m3umerge"
	defaultHistoryFile        = "history.db"
	defaultMergeGroup         = "Uncategorized"
	defaultMergeHeader        = "#EXTM3U"
	defaultAppendGroup        = "其它"
	defaultLockTimeoutSeconds = 30
	defaultFileModeText       = "0644"
	defaultFileMode           = os.FileMode(0o644)
	defaultHistoryKeepRuns    = 200
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Merge: Merge{
			DefaultGroup:  defaultMergeGroup,
			DefaultHeader: defaultMergeHeader,
		},
		Output: Output{
			Lock:               true,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
			FileMode:           defaultFileModeText,
		},
		History: History{
			Enabled:  true,
			KeepRuns: defaultHistoryKeepRuns,
		},
		Append: Append{
			DefaultGroup: defaultAppendGroup,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

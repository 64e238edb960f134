package config

const (
	defaultConfigPath         = "~/.config/lyricsync/config.toml"
	defaultProjectConfigName  = "lyricsync.toml"
	defaultLogDir             = "~/.local/share/lyricsync/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultPollIntervalMillis = 50
	defaultTitleDelaySeconds  = 216
	defaultTitleFadeSeconds   = 3
	maxPollIntervalMillis     = 1000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Playback: Playback{
			PollIntervalMillis: defaultPollIntervalMillis,
			TitleDelaySeconds:  defaultTitleDelaySeconds,
			TitleFadeSeconds:   defaultTitleFadeSeconds,
			ShowTitle:          true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

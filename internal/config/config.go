package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Alexander-D-Karpov/tamp/internal/platform"
)

const (
	BackendSpeaker   = "speaker"
	BackendPortAudio = "portaudio"
)

type Config struct {
	Debug bool `mapstructure:"debug"`

	Log struct {
		File string `mapstructure:"file"`
	} `mapstructure:"log"`

	Audio struct {
		Backend         string  `mapstructure:"backend"`
		SampleRate      int     `mapstructure:"sample_rate"`
		BufferMs        int     `mapstructure:"buffer_ms"`
		DefaultVolume   float64 `mapstructure:"default_volume"`
		ResampleQuality int     `mapstructure:"resample_quality"`
	} `mapstructure:"audio"`

	UI struct {
		Theme string `mapstructure:"theme"`
	} `mapstructure:"ui"`
}

// Load reads configuration from defaults, an optional config file, an optional
// .env file in the working directory and TAMP_ prefixed environment variables.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		configDir, err := platform.GetConfigDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TAMP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envKeyReplacer)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	cacheDir, _ := platform.GetCacheDir()
	v.SetDefault("log.file", filepath.Join(cacheDir, "tamp.log"))

	v.SetDefault("audio.backend", BackendSpeaker)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.buffer_ms", 100)
	v.SetDefault("audio.default_volume", 0.5)
	v.SetDefault("audio.resample_quality", 4)

	v.SetDefault("ui.theme", "dark")
}

func normalize(cfg *Config) error {
	switch cfg.Audio.Backend {
	case BackendSpeaker, BackendPortAudio:
	default:
		return fmt.Errorf("unknown audio backend %q", cfg.Audio.Backend)
	}

	if cfg.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.BufferMs <= 0 {
		cfg.Audio.BufferMs = 100
	}

	// beep.Resample panics outside 1..64
	if cfg.Audio.ResampleQuality < 1 {
		cfg.Audio.ResampleQuality = 1
	} else if cfg.Audio.ResampleQuality > 64 {
		cfg.Audio.ResampleQuality = 64
	}

	cfg.Audio.DefaultVolume = ClampVolume(cfg.Audio.DefaultVolume)

	if cfg.UI.Theme != "light" {
		cfg.UI.Theme = "dark"
	}
	return nil
}

// ClampVolume limits v to [0, 1] and rounds it to the nearest 0.1 step.
func ClampVolume(v float64) float64 {
	v = math.Round(v*10) / 10
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

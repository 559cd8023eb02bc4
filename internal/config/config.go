package config

import (
	"os"
	"time"

	"github.com/san-kum/typist/internal/typing"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTypingMs        = 100
	DefaultDeletingMs      = 50
	DefaultPauseCompleteMs = 2000
	DefaultPauseEmptyMs    = 500
	DefaultHeadline        = "안녕하세요!"
	DefaultTheme           = "hero"
)

type Config struct {
	Headline string       `yaml:"headline"`
	Theme    string       `yaml:"theme"`
	Phrases  []string     `yaml:"phrases"`
	Timing   TimingConfig `yaml:"timing"`
}

// TimingConfig holds delays in whole milliseconds as they appear on disk.
type TimingConfig struct {
	TypingMs        int `yaml:"typing_ms"`
	DeletingMs      int `yaml:"deleting_ms"`
	PauseCompleteMs int `yaml:"pause_complete_ms"`
	PauseEmptyMs    int `yaml:"pause_empty_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Headline: DefaultHeadline,
		Theme:    DefaultTheme,
		Phrases: []string{
			"Frontend 개발자 현민입니다.",
			"도전하는 개발자 HYUNMIN 입니다.",
		},
		Timing: TimingConfig{
			TypingMs:        DefaultTypingMs,
			DeletingMs:      DefaultDeletingMs,
			PauseCompleteMs: DefaultPauseCompleteMs,
			PauseEmptyMs:    DefaultPauseEmptyMs,
		},
	}
}

// Load reads a yaml file on top of DefaultConfig. A file that omits phrases
// keeps the default ones; a file with `phrases: []` is rejected by Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	out := *c
	out.Phrases = append([]string(nil), c.Phrases...)
	return &out
}

// Durations converts the millisecond fields for the animation engine.
func (t TimingConfig) Durations() typing.Timing {
	return typing.Timing{
		TypingInterval:     time.Duration(t.TypingMs) * time.Millisecond,
		DeletingInterval:   time.Duration(t.DeletingMs) * time.Millisecond,
		PauseAfterComplete: time.Duration(t.PauseCompleteMs) * time.Millisecond,
		PauseAfterEmpty:    time.Duration(t.PauseEmptyMs) * time.Millisecond,
	}
}

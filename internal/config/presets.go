package config

import "sort"

var Presets = map[string]*Config{
	"hero": {
		Headline: DefaultHeadline, Theme: "hero",
		Phrases: []string{
			"Frontend 개발자 현민입니다.",
			"도전하는 개발자 HYUNMIN 입니다.",
		},
		Timing: TimingConfig{TypingMs: 100, DeletingMs: 100, PauseCompleteMs: 2000, PauseEmptyMs: 500},
	},
	"classic": {
		Headline: "Hello!", Theme: "minimal",
		Phrases: []string{
			"I build things for the web.",
			"I write Go.",
			"I like terminals.",
		},
		Timing: TimingConfig{TypingMs: DefaultTypingMs, DeletingMs: DefaultDeletingMs, PauseCompleteMs: DefaultPauseCompleteMs, PauseEmptyMs: DefaultPauseEmptyMs},
	},
	"brisk": {
		Headline: "$ whoami", Theme: "retro",
		Phrases: []string{
			"gopher",
			"maintainer",
			"tinkerer",
		},
		Timing: TimingConfig{TypingMs: 40, DeletingMs: 20, PauseCompleteMs: 800, PauseEmptyMs: 200},
	},
	"slow": {
		Headline: "...", Theme: "ocean",
		Phrases: []string{
			"Take your time.",
			"천천히.",
		},
		Timing: TimingConfig{TypingMs: 250, DeletingMs: 120, PauseCompleteMs: 4000, PauseEmptyMs: 1200},
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/diegok/sacrifice/internal/protocol"
)

// Default values for configuration
const (
	DefaultFPS          = 60
	MaxFPS              = 240
	DefaultMaxFrameTime = 50 * time.Millisecond
	DefaultLogFile      = "logs/sacrifice.log"
)

// KeyMap lists the key names bound to each action
type KeyMap struct {
	LeftUp    []string `toml:"left_up"`
	LeftDown  []string `toml:"left_down"`
	RightUp   []string `toml:"right_up"`
	RightDown []string `toml:"right_down"`
	Pause     []string `toml:"pause"`
	Reset     []string `toml:"reset"`
	NewMatch  []string `toml:"new_match"`
	Quit      []string `toml:"quit"`
}

// DefaultKeyMap returns W/S for the left paddle, arrows for the right one
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp:    []string{"w"},
		LeftDown:  []string{"s"},
		RightUp:   []string{"up"},
		RightDown: []string{"down"},
		Pause:     []string{"space"},
		Reset:     []string{"r"},
		NewMatch:  []string{"enter"},
		Quit:      []string{"esc", "q"},
	}
}

// Names returns the keys bound to a
func (k KeyMap) Names(a protocol.Action) []string {
	switch a {
	case protocol.ActionLeftUp:
		return k.LeftUp
	case protocol.ActionLeftDown:
		return k.LeftDown
	case protocol.ActionRightUp:
		return k.RightUp
	case protocol.ActionRightDown:
		return k.RightDown
	case protocol.ActionPause:
		return k.Pause
	case protocol.ActionReset:
		return k.Reset
	case protocol.ActionNewMatch:
		return k.NewMatch
	case protocol.ActionQuit:
		return k.Quit
	}
	return nil
}

func (k *KeyMap) set(a protocol.Action, names []string) {
	switch a {
	case protocol.ActionLeftUp:
		k.LeftUp = names
	case protocol.ActionLeftDown:
		k.LeftDown = names
	case protocol.ActionRightUp:
		k.RightUp = names
	case protocol.ActionRightDown:
		k.RightDown = names
	case protocol.ActionPause:
		k.Pause = names
	case protocol.ActionReset:
		k.Reset = names
	case protocol.ActionNewMatch:
		k.NewMatch = names
	case protocol.ActionQuit:
		k.Quit = names
	}
}

// Bindings inverts the map into key name -> action.
// A key bound to two actions, an unknown name or an unbound action is an error.
func (k KeyMap) Bindings() (map[string]protocol.Action, error) {
	out := make(map[string]protocol.Action)
	for _, a := range protocol.Actions {
		names := k.Names(a)
		if len(names) == 0 {
			return nil, fmt.Errorf("no key bound to %s", a)
		}
		for _, name := range names {
			if !KnownKeys[name] {
				return nil, fmt.Errorf("unknown key %q for %s", name, a)
			}
			if prev, ok := out[name]; ok && prev != a {
				return nil, fmt.Errorf("key %q bound to both %s and %s", name, prev, a)
			}
			out[name] = a
		}
	}
	return out, nil
}

// KnownKeys holds every key name a binding may use: a-z plus the named keys
var KnownKeys = knownKeys()

func knownKeys() map[string]bool {
	keys := map[string]bool{
		"up": true, "down": true, "left": true, "right": true,
		"space": true, "enter": true, "esc": true, "tab": true, "backspace": true,
	}
	for c := 'a'; c <= 'z'; c++ {
		keys[string(c)] = true
	}
	return keys
}

// Config holds the application configuration
type Config struct {
	FPS          int
	MaxFrameTime time.Duration
	Seed         int64
	Mute         bool
	Debug        bool
	LogFile      string
	ConfigPath   string
	Keys         KeyMap
}

// FrameInterval returns the ticker period for FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// fileConfig mirrors the TOML settings file. Pointers tell "absent" from zero.
type fileConfig struct {
	FPS   *int   `toml:"fps"`
	MaxDT string `toml:"max_dt"`
	Mute  *bool  `toml:"mute"`
	Keys  KeyMap `toml:"keys"`
}

// ParseArgs parses command line arguments and returns a Config.
// Values come from defaults, then the --config file, then flags given
// explicitly on the command line.
func ParseArgs(args []string) (*Config, error) {
	return Parse("sacrifice", args)
}

// Parse is ParseArgs with a custom program name for usage output
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("frames per second (1-%d)", MaxFPS))
	maxDT := fs.Duration("max-dt", DefaultMaxFrameTime, "cap on the time step of a single frame")
	seed := fs.Int64("seed", 0, "random seed for serves (0 = time based)")
	mute := fs.Bool("mute", false, "disable sound")
	debug := fs.Bool("debug", false, "write a debug log")
	logFile := fs.String("log-file", DefaultLogFile, "debug log path")
	configPath := fs.String("config", "", "TOML settings file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := &Config{
		FPS:          DefaultFPS,
		MaxFrameTime: DefaultMaxFrameTime,
		LogFile:      DefaultLogFile,
		ConfigPath:   *configPath,
		Keys:         DefaultKeyMap(),
	}

	if cfg.ConfigPath != "" {
		if err := LoadFile(cfg.ConfigPath, cfg); err != nil {
			return nil, err
		}
	}

	// Explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fps
		case "max-dt":
			cfg.MaxFrameTime = *maxDT
		case "mute":
			cfg.Mute = *mute
		}
	})
	cfg.Seed = *seed
	cfg.Debug = *debug
	cfg.LogFile = *logFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile applies a TOML settings file on top of cfg. Keys not present in
// the file keep their current value; a listed action replaces its bindings.
func LoadFile(path string, cfg *Config) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown setting %q in %s", undecoded[0].String(), path)
	}

	if fc.FPS != nil {
		cfg.FPS = *fc.FPS
	}
	if fc.MaxDT != "" {
		d, err := time.ParseDuration(fc.MaxDT)
		if err != nil {
			return fmt.Errorf("max_dt in %s: %w", path, err)
		}
		cfg.MaxFrameTime = d
	}
	if fc.Mute != nil {
		cfg.Mute = *fc.Mute
	}

	for _, a := range protocol.Actions {
		names := fc.Keys.Names(a)
		if len(names) == 0 {
			continue
		}
		normalized := make([]string, len(names))
		for i, n := range names {
			normalized[i] = strings.ToLower(strings.TrimSpace(n))
		}
		cfg.Keys.set(a, normalized)
	}

	return nil
}

// Validate checks ranges and key bindings
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("max-dt must be positive, got %s", c.MaxFrameTime)
	}
	if c.Debug && c.LogFile == "" {
		return errors.New("--debug needs a --log-file")
	}
	if _, err := c.Keys.Bindings(); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	return nil
}

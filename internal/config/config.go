// Package config provides access to the feature's settings.
//
// Settings live in a JSON document addressed by dot-separated paths
// (e.g., "crosshair.flashSeconds"). Section accessor methods return
// snapshot structs; mutating a snapshot does not modify the underlying
// configuration — use Config.Set() to update values.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/crosshair/internal/style"
)

// Default values for crosshair settings.
const (
	DefaultForeground   = "#1c1c1c"
	DefaultBackground   = "#ff8700"
	DefaultFlashSeconds = 2.0
	DefaultIdleSeconds  = 3.0
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeReload indicates the entire configuration was reloaded.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Path is the dot-separated path to the changed setting.
	// Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value (may be nil for reloads).
	NewValue any
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Config provides thread-safe access to the settings document.
type Config struct {
	mu   sync.RWMutex
	path string
	raw  []byte

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObsID int

	watcher *fileWatcher
}

// New creates an empty configuration holding only defaults.
func New() *Config {
	return &Config{
		raw:       []byte("{}"),
		observers: make(map[int]Observer),
	}
}

// Load reads the settings file at path. A missing file is not an error;
// the configuration simply keeps its defaults and remembers the path for
// Save and Watch.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.mu.Lock()
			c.path = path
			c.mu.Unlock()
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config %s: invalid JSON", path)
	}

	c.mu.Lock()
	c.path = path
	c.raw = data
	c.mu.Unlock()

	c.notify(Change{Type: ChangeReload})
	return nil
}

// Save writes the settings document back to the loaded path.
func (c *Config) Save() error {
	c.mu.RLock()
	path := c.path
	data := make([]byte, len(c.raw))
	copy(data, c.raw)
	c.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("save config: no path loaded")
	}
	return os.WriteFile(path, data, 0o644)
}

// GetString returns the string at path, or def when unset.
func (c *Config) GetString(path, def string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v := gjson.GetBytes(c.raw, path); v.Exists() {
		return v.String()
	}
	return def
}

// GetFloat returns the number at path, or def when unset.
func (c *Config) GetFloat(path string, def float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v := gjson.GetBytes(c.raw, path); v.Exists() {
		return v.Float()
	}
	return def
}

// GetInt returns the integer at path, or def when unset.
func (c *Config) GetInt(path string, def int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v := gjson.GetBytes(c.raw, path); v.Exists() {
		return int(v.Int())
	}
	return def
}

// GetBool returns the boolean at path, or def when unset.
func (c *Config) GetBool(path string, def bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v := gjson.GetBytes(c.raw, path); v.Exists() {
		return v.Bool()
	}
	return def
}

// Set updates the value at path and notifies observers.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	old := gjson.GetBytes(c.raw, path).Value()
	raw, err := sjson.SetBytes(c.raw, path, value)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("set %s: %w", path, err)
	}
	c.raw = raw
	c.mu.Unlock()

	c.notify(Change{Path: path, Type: ChangeSet, OldValue: old, NewValue: value})
	return nil
}

// Subscribe registers an observer for configuration changes.
// The returned id unsubscribes via Unsubscribe.
func (c *Config) Subscribe(fn Observer) int {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.nextObsID++
	c.observers[c.nextObsID] = fn
	return c.nextObsID
}

// Unsubscribe removes a previously registered observer.
func (c *Config) Unsubscribe(id int) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	delete(c.observers, id)
}

func (c *Config) notify(change Change) {
	c.obsMu.Lock()
	obs := make([]Observer, 0, len(c.observers))
	for _, fn := range c.observers {
		obs = append(obs, fn)
	}
	c.obsMu.Unlock()

	for _, fn := range obs {
		fn(change)
	}
}

// CrosshairConfig is a snapshot of the crosshair settings section.
type CrosshairConfig struct {
	// Foreground and Background describe the highlight style.
	// Both empty means each highlight facility keeps its own default.
	Foreground string
	Background string

	// FlashDuration is the default duration for timed activation.
	FlashDuration time.Duration

	// IdlePopupDelay is the delay applied to the idle popup feature
	// while highlighting is active.
	IdlePopupDelay time.Duration
}

// Style parses the section's highlight style. Unparseable colors fall
// back to the zero style, deferring to the facilities' defaults.
func (cc CrosshairConfig) Style() style.Style {
	st, err := style.Parse(cc.Foreground, cc.Background)
	if err != nil {
		return style.Style{}
	}
	return st
}

// Crosshair returns type-safe access to the crosshair settings.
func (c *Config) Crosshair() CrosshairConfig {
	return CrosshairConfig{
		Foreground:     c.GetString("crosshair.foreground", DefaultForeground),
		Background:     c.GetString("crosshair.background", DefaultBackground),
		FlashDuration:  secondsToDuration(c.GetFloat("crosshair.flashSeconds", DefaultFlashSeconds)),
		IdlePopupDelay: secondsToDuration(c.GetFloat("crosshair.idlePopupSeconds", DefaultIdleSeconds)),
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/imbridge/internal/config/loader"
)

// Config provides access to the merged imbridge configuration.
type Config struct {
	mu sync.RWMutex

	fs        loader.FileSystem
	path      string
	envPrefix string
	useEnv    bool

	// layers, lowest first
	defaults  map[string]any
	file      map[string]any
	env       map[string]any
	overrides map[string]any

	merged   map[string]any
	settings Settings
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the configuration file. Its extension selects the format.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		if fsys != nil {
			c.fs = fsys
		}
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnv enables or disables the environment layer.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// New creates a Config holding only the built-in defaults.
// Call Load to read the file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		useEnv:    true,
		defaults:  defaultConfig(),
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.merged = c.mergeLayers(c.file, c.env, c.overrides)
	c.settings, _ = decodeSettings(c.merged)
	return c
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "imbridge", "config.toml")
}

// Path returns the configuration file path, which may be empty.
func (c *Config) Path() string {
	return c.path
}

// Load reads the file and environment layers. A missing file is not an
// error. If the merged result fails to decode or validate, the previously
// loaded configuration is kept and the error is returned.
func (c *Config) Load(_ context.Context) error {
	var file map[string]any
	if c.path != "" {
		l, err := loader.ForPath(c.fs, c.path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", c.path, err)
		}
		if file, err = l.Load(); err != nil {
			return fmt.Errorf("loading %s: %w", c.path, err)
		}
	}

	var env map[string]any
	if c.useEnv {
		var err error
		if env, err = loader.NewEnvLoader(c.envPrefix).Load(); err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := c.mergeLayers(file, env, c.overrides)
	settings, err := decodeSettings(merged)
	if err != nil {
		return err
	}

	c.file = file
	c.env = env
	c.merged = merged
	c.settings = settings
	return nil
}

// Set sets a value in the command line layer, above every other layer.
// The change is rejected if the result does not validate.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	overrides := loader.Clone(c.overrides)
	if err := setPath(overrides, path, value); err != nil {
		return err
	}

	merged := c.mergeLayers(c.file, c.env, overrides)
	settings, err := decodeSettings(merged)
	if err != nil {
		return err
	}

	c.overrides = overrides
	c.merged = merged
	c.settings = settings
	return nil
}

// Settings returns the typed settings from the last successful load.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.clone()
}

// Merged returns a copy of the merged configuration tree.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.Clone(c.merged)
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getString(c.merged, path)
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getInt(c.merged, path)
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getBool(c.merged, path)
}

// GetStringSlice returns a string slice at the given path.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getStringSlice(c.merged, path)
}

// GetStringMap returns a map of strings at the given path.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getStringMap(c.merged, path)
}

func (c *Config) mergeLayers(layers ...map[string]any) map[string]any {
	merged := loader.Clone(c.defaults)
	for _, l := range layers {
		merged = loader.DeepMerge(merged, loader.Clone(l))
	}
	return merged
}

// defaultConfig returns the built-in defaults layer.
func defaultConfig() map[string]any {
	return map[string]any{
		"platform": map[string]any{
			"name": "imbridge",
		},
		"input": map[string]any{
			"emitKeyUp":           true,
			"noMouseCursorChange": false,
			"extraKeys":           map[string]any{},
		},
		"cursor": map[string]any{
			"shapes": map[string]any{},
		},
		"display": map[string]any{
			"width":  int64(1280),
			"height": int64(720),
		},
		"frame": map[string]any{
			"fps": int64(60),
		},
		"host": map[string]any{
			"kind":    "term",
			"devices": []any{},
		},
		"clipboard": map[string]any{
			"system": true,
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into parts, dropping empty parts.
func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

func getString(m map[string]any, path string) (string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func getInt(m map[string]any, path string) (int, error) {
	v, ok := getPath(m, path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

func getBool(m map[string]any, path string) (bool, error) {
	v, ok := getPath(m, path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func getStringSlice(m map[string]any, path string) ([]string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return nil, ErrSettingNotFound
	}

	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
			}
			result[i] = s
		}
		return result, nil
	case string:
		// a single path from the environment
		if val == "" {
			return nil, nil
		}
		return []string{val}, nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

func getStringMap(m map[string]any, path string) (map[string]string, error) {
	v, ok := getPath(m, path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	val, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "map", Actual: typeName(v)}
	}

	result := make(map[string]string, len(val))
	for k, item := range val {
		s, ok := item.(string)
		if !ok {
			return nil, &TypeError{Path: path + "." + k, Expected: "string", Actual: typeName(item)}
		}
		result[k] = s
	}
	return result, nil
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

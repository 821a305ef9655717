// Package config provides layered configuration for imbridge.
//
// Configuration is built from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Set()
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← IMBRIDGE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Values are addressed by dot-separated paths such as "input.emitKeyUp".
// Settings returns the merged tree decoded into typed sections, and
// Load refuses a tree that fails validation so a bad edit during live
// reload leaves the previous settings in place.
//
//	cfg := config.New(config.WithPath("imbridge.toml"))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	pcfg, err := cfg.Settings().PlatformConfig()
package config

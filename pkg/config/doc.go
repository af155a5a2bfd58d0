// Package config handles configuration management for datapacks.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, TOML or YAML by extension
//  3. DATAPACKS_* environment variables (DATAPACKS_PACKAGES_ACTIVE -> packages.active)
//  4. explicit overrides, typically command-line flags
package config

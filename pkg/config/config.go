package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	dperrors "github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/logging"
	"github.com/arthur-debert/datapacks/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "DATAPACKS_"

// configFileNames are tried in order inside the config directory
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config is the complete datapacks configuration
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Packages PackagesConfig `koanf:"packages"`
	Log      LogConfig      `koanf:"log"`
}

// DataConfig locates the global data roots
type DataConfig struct {
	UserDir string `koanf:"user_dir"`
	GameDir string `koanf:"game_dir"`
}

// PackagesConfig controls package selection and discovery
type PackagesConfig struct {
	Active      string `koanf:"active"`
	Descriptors bool   `koanf:"descriptors"`
}

// LogConfig controls logging
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// ConfigDir is searched for config.{toml,yaml,yml} when ConfigFile is
	// empty. Defaults to paths.ConfigDir().
	ConfigDir string

	// Overrides are applied last, keyed by dotted koanf path
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from every layer.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dperrors.Wrap(err, dperrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	configFile, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, dperrors.Wrapf(err, dperrors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, dperrors.Wrap(err, dperrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, dperrors.Wrap(err, dperrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, dperrors.Wrap(err, dperrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the configuration built from the embedded defaults only.
func Default() *Config {
	return &Config{Packages: PackagesConfig{Descriptors: true}}
}

// Roots resolves the configured data roots, applying path defaults for
// empty values.
func (c *Config) Roots() (paths.Roots, error) {
	return paths.NewRoots(c.Data.UserDir, c.Data.GameDir)
}

// envSections are the top level config sections settable from the
// environment
var envSections = map[string]bool{"data": true, "packages": true, "log": true}

// envKey maps DATAPACKS_SECTION_SOME_KEY to section.some_key. Variables
// outside a known section map to "" and are skipped by the env provider.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found || rest == "" || !envSections[section] {
		return ""
	}
	return section + "." + rest
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", dperrors.Wrap(err, dperrors.ErrConfigLoad, "cannot access config file").
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		dir = paths.ConfigDir()
	}
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, dperrors.Newf(dperrors.ErrConfigLoad, "unsupported config file type %q", filepath.Ext(path)).
		WithDetail("path", path)
}

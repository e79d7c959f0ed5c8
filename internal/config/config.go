// Package config provides configuration management for xdg-dirs using Viper.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/francisco-colaco/xdg-directories/pkg/xdgdirs"
)

// AppName is the tool's own name, used for config file placement.
const AppName = "xdg-dirs"

// DefaultNamespace is the application namespace used when none is
// configured. The project grew out of locating Emacs files, so emacs
// remains the default.
const DefaultNamespace = "emacs"

// Config represents the top-level configuration structure. Every directory
// the resolver would compute from the environment can be overridden here.
type Config struct {
	// App is the application namespace appended to each base directory.
	App string `mapstructure:"app" yaml:"app"`

	// Directories overrides individual XDG base directories.
	Directories Directories `mapstructure:"directories" yaml:"directories"`

	// AppDirs overrides derived application directories per domain
	// (config, data, cache, runtime), independently of the base set.
	AppDirs map[string]string `mapstructure:"app_dirs" yaml:"app_dirs"`

	// Lookup configures the user-directory lookup utility.
	Lookup Lookup `mapstructure:"lookup" yaml:"lookup"`
}

// Directories holds base directory overrides. Empty fields defer to the
// environment.
type Directories struct {
	ConfigHome string `mapstructure:"config_home" yaml:"config_home"`
	DataHome   string `mapstructure:"data_home" yaml:"data_home"`
	CacheHome  string `mapstructure:"cache_home" yaml:"cache_home"`
	RuntimeDir string `mapstructure:"runtime_dir" yaml:"runtime_dir"`
}

// Lookup configures the external user-directory utility.
type Lookup struct {
	// Command is the utility to invoke. Defaults to xdg-user-dir.
	Command string `mapstructure:"command" yaml:"command"`

	// Timeout bounds one invocation.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdgdirs.ResolveBaseDirs().ConfigHome, AppName))

	viper.SetEnvPrefix("XDG_DIRS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app", DefaultNamespace)
	viper.SetDefault("lookup.command", "xdg-user-dir")
	viper.SetDefault("lookup.timeout", xdgdirs.DefaultLookupTimeout)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file; otherwise it
// searches the default locations and falls back to defaults when no file
// is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load without a file uses defaults.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// BuildResolver constructs a path resolver from the configuration:
// environment-derived base directories patched with the configured
// overrides, plus any per-domain application directory overrides.
func (c *Config) BuildResolver() (*xdgdirs.Resolver, error) {
	base := xdgdirs.ResolveBaseDirs()
	if c.Directories.ConfigHome != "" {
		base.ConfigHome = c.Directories.ConfigHome
	}
	if c.Directories.DataHome != "" {
		base.DataHome = c.Directories.DataHome
	}
	if c.Directories.CacheHome != "" {
		base.CacheHome = c.Directories.CacheHome
	}
	if c.Directories.RuntimeDir != "" {
		base.RuntimeDir = c.Directories.RuntimeDir
	}

	app := c.App
	if app == "" {
		app = DefaultNamespace
	}

	opts := []xdgdirs.Option{xdgdirs.WithBaseDirs(base)}
	for domain, dir := range c.AppDirs {
		d := xdgdirs.Domain(domain)
		if !xdgdirs.ValidDomain(d) {
			return nil, errors.Wrapf(xdgdirs.ErrUnknownDomain, "app_dirs key %q", domain)
		}
		opts = append(opts, xdgdirs.WithAppDir(d, dir))
	}
	return xdgdirs.New(app, opts...), nil
}

// Provider returns the configured user-directory lookup chain: the
// configured utility first, well-known fallback locations second.
func (c *Config) Provider() xdgdirs.Provider {
	return xdgdirs.ChainProvider{
		&xdgdirs.CommandProvider{
			Command: c.Lookup.Command,
			Timeout: c.Lookup.Timeout,
		},
		xdgdirs.FallbackProvider{},
	}
}

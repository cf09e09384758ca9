package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/static-server/internal/validator"
)

const (
	DefaultPort     = 8000
	DefaultLogTag   = "static-server"
	DefaultLogLevel = "info"

	envPrefix = "STATIC_SERVER"
)

var DefaultIndexFiles = []string{"index.html", "index.htm"}

// Override is applied after the file and the environment, e.g. for command line flags.
type Override func(c *Config)

type envOverrides struct {
	Port     *int   `envconfig:"PORT"`
	Root     string `envconfig:"ROOT"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// Default returns the configuration used when no file is given: port 8000 and
// the directory of the running executable as root.
func Default() (Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("locate executable: %v", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Tag:   DefaultLogTag,
		},
		Servers: ServersConfig{
			Static: StaticServerConfig{
				Port:       DefaultPort,
				Root:       filepath.Dir(exe),
				IndexFiles: append([]string(nil), DefaultIndexFiles...),
				Listing:    true,
			},
		},
	}, nil
}

// ParseAndValidate builds the config from defaults, the optional TOML file,
// STATIC_SERVER_* environment variables and the overrides, in that order.
func ParseAndValidate(filename string, overrides ...Override) (Config, error) {
	conf, err := Default()
	if err != nil {
		return conf, err
	}

	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, err
		}
	}

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}
	if env.Port != nil {
		conf.Servers.Static.Port = *env.Port
	}
	if env.Root != "" {
		conf.Servers.Static.Root = env.Root
	}
	if env.LogLevel != "" {
		conf.Log.Level = env.LogLevel
	}

	for _, o := range overrides {
		o(&conf)
	}

	if root := conf.Servers.Static.Root; root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return conf, fmt.Errorf("resolve root %q: %v", root, err)
		}
		conf.Servers.Static.Root = abs
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func WithPort(port int) Override {
	return func(c *Config) { c.Servers.Static.Port = port }
}

func WithRoot(root string) Override {
	return func(c *Config) { c.Servers.Static.Root = root }
}

package config

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
	// Tag prefixes every access log line.
	Tag string `toml:"tag" validate:"required"`
}

type SentryConfig struct {
	DSN string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Static StaticServerConfig `toml:"static"`
	Debug  DebugServerConfig  `toml:"debug"`
}

type StaticServerConfig struct {
	Port       int      `toml:"port" validate:"gte=0,lte=65535"`
	Root       string   `toml:"root" validate:"required,absdir"`
	IndexFiles []string `toml:"index_files" validate:"min=1,dive,required,excludesall=/\\"`
	Listing    bool     `toml:"listing"`
}

type DebugServerConfig struct {
	// Addr is empty when the debug server is disabled.
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

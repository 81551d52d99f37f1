package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Games    int    `yaml:"games" env:"GAMES" env-default:"1"`
	First    Seat   `yaml:"first" env-prefix:"FIRST_"`
	Second   Seat   `yaml:"second" env-prefix:"SECOND_"`
	Search   Search `yaml:"search"`
	Redis    Redis  `yaml:"redis"`
}

// Seat - kind is one of bot, random or human; depth only matters for bots.
type Seat struct {
	Kind  string `yaml:"kind" env:"KIND" env-default:"bot"`
	Depth int    `yaml:"depth" env:"DEPTH" env-default:"2"`
}

type Search struct {
	Workers int `yaml:"workers" env:"SEARCH_WORKERS" env-default:"1"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

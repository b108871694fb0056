package config

import (
	"fmt"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FramingLine   = "line"
	FramingLength = "length"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Server            Server `yaml:"server"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./data/tictactoe.db"`
}

// Server holds everything the game listener needs.
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"127.0.0.1"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"65432"`
	MoveTimeout  time.Duration `yaml:"move-timeout" env:"SERVER_MOVE_TIMEOUT" env-default:"10m"`
	WriteTimeout time.Duration `yaml:"write-timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"5s"`
	Framing      string        `yaml:"framing" env:"SERVER_FRAMING" env-default:"line"`
	RequireLogin bool          `yaml:"require-login" env:"SERVER_REQUIRE_LOGIN" env-default:"true"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
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

func (that *Server) GetAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/uno/consts"
)

// Config is read from the environment (and a .env file next to the binary
// when one exists). Command line flags override it.
type Config struct {
	Players   int    `env:"UNO_PLAYERS,default=4"`
	Name      string `env:"UNO_NAME,default=Player"`
	Seed      int64  `env:"UNO_SEED"`
	TurnLimit int    `env:"UNO_TURN_LIMIT,default=1000"`

	TcpAddr string `env:"UNO_TCP_ADDR,default=:9999"`
	WsAddr  string `env:"UNO_WS_ADDR"`

	PlayTimeout time.Duration `env:"UNO_PLAY_TIMEOUT,default=40s"`

	RedisAddr  string `env:"UNO_REDIS_ADDR"`
	RedisDB    int    `env:"UNO_REDIS_DB,default=0"`
	RedisQueue string `env:"UNO_REDIS_QUEUE,default=uno:actions"`
}

func Load() (Config, error) {
	cfg, err := Decode()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode reads the environment without validating, for callers that still
// apply overrides.
func Decode() (Config, error) {
	cfg := Config{}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%d players: %w", c.Players, consts.ErrorsGamePlayersInvalid)
	}
	if c.TurnLimit < 0 {
		return fmt.Errorf("turn limit %d: %w", c.TurnLimit, consts.ErrorsInputInvalid)
	}
	return nil
}

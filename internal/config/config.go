package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInvalidHumanMark = errors.New("human mark must be X or O")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Players  Players `yaml:"players"`
}

type Players struct {
	Human Human `yaml:"human"`
	Bot   Bot   `yaml:"bot"`
}

type Human struct {
	Name string `yaml:"name" env:"HUMAN_NAME" env-default:"YOU"`
	Mark string `yaml:"mark" env:"HUMAN_MARK" env-default:"X"`
}

type Bot struct {
	Name string `yaml:"name" env:"BOT_NAME" env-default:"Computer"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if !entity.Cell(that.Players.Human.Mark).IsMark() {
		return fmt.Errorf("%w: %q", ErrInvalidHumanMark, that.Players.Human.Mark)
	}

	return nil
}

// HumanPlayer - the human moves first with the configured mark.
func (that *Players) HumanPlayer() *entity.Player {
	return entity.NewPlayer(that.Human.Name, entity.Cell(that.Human.Mark))
}

// BotPlayer - the bot always plays the human's opponent mark.
func (that *Players) BotPlayer() *entity.Player {
	return entity.NewPlayer(that.Bot.Name, entity.Cell(that.Human.Mark).Opponent())
}

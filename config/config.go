package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"dominion/game"
)

// Config collects everything tunable about a run: the table being played
// and the search budget of each agent.
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Search SearchConfig `mapstructure:"search"`
}

type GameConfig struct {
	Players int      `mapstructure:"players"`
	Kingdom []string `mapstructure:"kingdom"`
	Seed    uint64   `mapstructure:"seed"`
}

type SearchConfig struct {
	Goroutines int           `mapstructure:"goroutines"`
	Episodes   int           `mapstructure:"episodes"`
	Duration   time.Duration `mapstructure:"duration"`
	Cutoff     int           `mapstructure:"cutoff"`
}

// Load reads configuration from the given YAML file, falling back to
// defaults for anything unset. An empty path loads pure defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Setup(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", 2)
	kingdom := make([]string, 0, len(game.DefaultKingdom()))
	for _, t := range game.DefaultKingdom() {
		kingdom = append(kingdom, t.String())
	}
	v.SetDefault("game.kingdom", kingdom)
	v.SetDefault("game.seed", 1)

	v.SetDefault("search.goroutines", 8)
	v.SetDefault("search.episodes", 0)
	v.SetDefault("search.duration", 100*time.Millisecond)
	v.SetDefault("search.cutoff", 0)
}

// Setup converts the game section into the game package's setup form.
func (c *Config) Setup() (game.Setup, error) {
	kingdom := make([]game.CardType, 0, len(c.Game.Kingdom))
	for _, name := range c.Game.Kingdom {
		t, ok := game.ParseCardType(name)
		if !ok {
			return game.Setup{}, fmt.Errorf("unknown kingdom pile %q", name)
		}
		kingdom = append(kingdom, t)
	}
	return game.Setup{
		Players: c.Game.Players,
		Kingdom: kingdom,
		Seed:    c.Game.Seed,
	}, nil
}

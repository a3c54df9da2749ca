package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	HTTP        HTTP
	Scheduler   Scheduler
}

// TelegramBot is optional; the bot and scheduled posts stay off without a token.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type ESPNAPI struct {
	Year              int           `envconfig:"YEAR"`
	LeagueID          string        `envconfig:"LEAGUE_ID" required:"true"`
	SWID              string        `envconfig:"SWID"`
	ESPNS2            string        `envconfig:"ESPN_S2"`
	RequestsPerSecond float64       `envconfig:"ESPN_REQUESTS_PER_SECOND" default:"5"`
	FetchConcurrency  int           `envconfig:"ESPN_FETCH_CONCURRENCY" default:"4"`
	Timeout           time.Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":80"`
}

type Scheduler struct {
	Timezone string `envconfig:"SCHEDULE_TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.ESPNAPI.Year == 0 {
		c.ESPNAPI.Year = currentSeason(time.Now())
	}
	return &c, nil
}

// currentSeason treats January through July as the tail of last year's season.
func currentSeason(now time.Time) int {
	if now.Month() < time.August {
		return now.Year() - 1
	}
	return now.Year()
}

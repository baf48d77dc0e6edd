package config

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Conf - настройки приложения
	Conf struct {
		Server Server `yaml:"server"`

		// мессенджер, через который общаемся с пользователем
		Connect Connect `yaml:"connect"`
		// сервис контента и бесед
		Gateway Gateway `yaml:"gateway"`

		SpecID *uuid.UUID  `yaml:"spec_id"`
		Line   []uuid.UUID `yaml:"line"`

		BotConfig string `yaml:"bot_config"`
		LogConfig string `yaml:"log_config"`

		RunInDebug bool `yaml:"-"`
	}

	Server struct {
		// внешний адрес бота, на него мессенджер присылает события
		Host   string `yaml:"host"`
		Listen string `yaml:"listen"`
	}

	Connect struct {
		Server   string `yaml:"server"`
		Login    string `yaml:"login"`
		Password string `yaml:"password"`
	}

	Gateway struct {
		Addr string `yaml:"addr"`
		// например "10s"
		Timeout string `yaml:"timeout"`
	}
)

// RequestTimeout - ограничение времени запроса к сервису контента
func (g Gateway) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(g.Timeout)
	if err != nil || d <= 0 {
		return DefaultGatewayTimeout
	}
	return d
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"support-nav-bot/internal/logger"

	"github.com/goccy/go-yaml"
)

const (
	CONNECT_SERVER = "https://push.1c-connect.com"
	GATEWAY_SERVER = "http://127.0.0.1:8000"

	DefaultGatewayTimeout = 10 * time.Second
	DefaultListen         = ":8080"
)

// GetConfig - прочитать настройки из yaml файла и заполнить значения по умолчанию
func GetConfig(configPath string, cnf *Conf) error {
	logger.Debug("Loading configuration", configPath)

	input, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл настроек %s: %w", configPath, err)
	}
	defer input.Close()

	if err := yaml.NewDecoder(input).Decode(cnf); err != nil {
		return fmt.Errorf("не удалось разобрать файл настроек %s: %w", configPath, err)
	}

	cnf.setDefault()

	return nil
}

func (cnf *Conf) setDefault() {
	if cnf.Server.Listen == "" {
		cnf.Server.Listen = DefaultListen
	}
	if cnf.Connect.Server == "" {
		cnf.Connect.Server = CONNECT_SERVER
	}
	if cnf.Gateway.Addr == "" {
		cnf.Gateway.Addr = GATEWAY_SERVER
	}
	cnf.Connect.Server = strings.TrimRight(cnf.Connect.Server, "/")
	cnf.Gateway.Addr = strings.TrimRight(cnf.Gateway.Addr, "/")
}

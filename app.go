package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"support-nav-bot/bot"
	"support-nav-bot/internal/botconfig_parser"
	"support-nav-bot/internal/cache"
	"support-nav-bot/internal/config"
	connect "support-nav-bot/internal/connect/client"
	"support-nav-bot/internal/database"
	gateway "support-nav-bot/internal/gateway/client"
	"support-nav-bot/internal/keyboard"
	"support-nav-bot/internal/logger"
	"support-nav-bot/internal/navigation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"gopkg.in/fsnotify.v1"
)

func main() {
	var (
		cnf = &config.Conf{}

		configFile = flag.StringP("config", "c", "./config/config.yml", "path to the application config")
		botConfig  = flag.StringP("bot", "b", "", "path to the bot texts config, overrides bot_config")
		logConfig  = flag.StringP("log", "l", "", "path to the logger config, overrides log_config")
		debug      = flag.BoolP("debug", "d", false, "print debug information on stderr")
	)

	flag.Parse()

	logger.InitLogger(*debug, "")

	if err := config.GetConfig(*configFile, cnf); err != nil {
		logger.Crit(err)
	}
	cnf.RunInDebug = *debug
	if *botConfig != "" {
		cnf.BotConfig = *botConfig
	}
	if *logConfig != "" {
		cnf.LogConfig = *logConfig
	}

	if logFile := logger.InitLogger(*debug, cnf.LogConfig); logFile != nil {
		defer logFile.Close()
	}
	logger.Info("Application starting...")

	if *debug {
		logger.Debug("Config:", cnf)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	texts, err := botconfig_parser.InitTexts(cnf.BotConfig)
	if err != nil {
		logger.Crit(err)
	}

	store := cache.NewStore(database.ConnectInMemoryCache())
	engine := navigation.New(
		gateway.New(cnf.Gateway.Addr, cnf.Gateway.RequestTimeout()),
		store,
		keyboard.NewIndex(),
		texts,
	)

	lines := make([]*connect.Client, 0, len(cnf.Line))
	senders := make(map[uuid.UUID]bot.Sender, len(cnf.Line))
	for _, lineID := range cnf.Line {
		line := connect.New(lineID, cnf.Connect.Server, cnf.Connect.Login, cnf.Connect.Password, cnf.SpecID)
		lines = append(lines, line)
		senders[lineID] = line
	}

	app := gin.Default()
	bot.InitHooks(app, bot.New(engine, senders), cnf.Server.Host, lines)

	srv := &http.Server{
		Addr:    cnf.Server.Listen,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Crit("Listen:", err)
		}
	}()

	// следим за изменениями текстов бота
	if cnf.BotConfig != "" {
		watcher, err := watchTexts(cnf.BotConfig, texts)
		if err != nil {
			logger.Warning("Изменения текстов бота не отслеживаются:", err)
		} else {
			defer watcher.Close()
		}
	}

	logger.Info("Application started")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	// kill -SIGHUP XXXX
	// kill -SIGINT XXXX or Ctrl+c
	<-signals
	logger.Info("Catch OS signal! Exiting...")

	bot.DestroyHooks(lines)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warning("App forced to shutdown:", err)
	}

	logger.Info("Application stopped correctly!")
}

// watchTexts - перечитывать тексты бота при записи в файл
func watchTexts(path string, texts *botconfig_parser.Config) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// следим за папкой, т.к. редакторы часто сохраняют файл через переименование
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				logger.Debug("event:", event.String())
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := texts.UpdateTexts(path); err != nil {
						logger.Warning("Не корректный файл с текстами бота!", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warning("watcher error:", err)
			}
		}
	}()

	return watcher, nil
}

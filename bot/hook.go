package bot

import (
	"context"
	"strings"
	"time"

	"support-nav-bot/internal/connect/client"
	"support-nav-bot/internal/logger"

	"github.com/gin-gonic/gin"
)

const RECEIVE_PATH = "/connect-push/receive/"

func InitHooks(app *gin.Engine, b *Bot, host string, lines []*client.Client) {
	logger.Info("Init receiving endpoint...")

	app.POST(RECEIVE_PATH, b.Receive)

	logger.Info("Setup hooks on messenger...")

	hookAddr := strings.TrimRight(host, "/") + RECEIVE_PATH
	for _, line := range lines {
		logger.Info("- hook for line", line.LineID())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := line.SetHook(ctx, hookAddr)
		cancel()
		if err != nil {
			logger.Crit("Error while setup hook:", err)
		}
	}
}

func DestroyHooks(lines []*client.Client) {
	logger.Info("Destroy hooks on messenger...")

	for _, line := range lines {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := line.DeleteHook(ctx)
		cancel()
		if err != nil {
			logger.Warning("Error while delete hook:", err)
		}
	}
}

package database

import (
	"time"

	"support-nav-bot/internal/logger"

	"github.com/allegro/bigcache/v3"
)

// сессии живут пока живет процесс, поэтому окно жизни записи берем с запасом,
// а фоновую очистку отключаем
const sessionLifeWindow = 100 * 365 * 24 * time.Hour

func InMemoryCacheConfig() bigcache.Config {
	cnf := bigcache.DefaultConfig(sessionLifeWindow)
	cnf.CleanWindow = 0
	cnf.HardMaxCacheSize = 0
	cnf.Verbose = false
	return cnf
}

func ConnectInMemoryCache() *bigcache.BigCache {
	cache, err := bigcache.NewBigCache(InMemoryCacheConfig())
	if err != nil {
		logger.Crit(err)
	}
	return cache
}

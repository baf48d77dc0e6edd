package cache

import (
	"encoding/json"
	"errors"
	"strconv"

	"support-nav-bot/internal/logger"

	"github.com/allegro/bigcache/v3"
)

// Store - сессии пользователей в памяти процесса.
// Запись одного пользователя не блокирует других: bigcache держит отдельную блокировку на каждый шард.
// Для одного пользователя гарантируется только "побеждает последняя запись".
type Store struct {
	cache *bigcache.BigCache
}

func NewStore(cache *bigcache.BigCache) *Store {
	return &Store{cache: cache}
}

func sessionKey(userID int64) string {
	return "session:" + strconv.FormatInt(userID, 10)
}

// Get - получить сессию пользователя. Если ее нет, создается пустая.
func (s *Store) Get(userID int64) Session {
	var session Session

	b, err := s.cache.Get(sessionKey(userID))
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			logger.Warning("Error while read session from cache", userID, err)
		} else {
			logger.Info("No session in cache for", userID)
		}
		if err := s.Set(userID, &session); err != nil {
			logger.Warning("Error while create session", userID, err)
		}
		return session
	}

	if err := json.Unmarshal(b, &session); err != nil {
		logger.Warning("Error while decoding session", userID, err)
		return Session{}
	}

	return session
}

// Set - сохранить сессию пользователя целиком
func (s *Store) Set(userID int64, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.cache.Set(sessionKey(userID), data); err != nil {
		return err
	}
	logger.Debug("Write session to cache", strconv.FormatInt(userID, 10), session)

	return nil
}

// Update - прочитать сессию, изменить и сохранить
func (s *Store) Update(userID int64, fn func(session *Session)) error {
	session := s.Get(userID)
	fn(&session)
	return s.Set(userID, &session)
}

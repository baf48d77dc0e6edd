package botconfig_parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"support-nav-bot/internal/logger"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"
)

// Config - текущие тексты бота, перечитываются при изменении файла
type Config struct {
	lock  sync.RWMutex
	texts *Texts
}

// DefaultTexts - тексты без файла настроек
func DefaultTexts() *Texts {
	t := &Texts{}
	t.setDefault()
	return t
}

// InitTexts - загрузить тексты. Если файла нет, используются тексты по умолчанию.
func InitTexts(path string) (*Config, error) {
	texts, err := loadTexts(path)
	if err != nil {
		return nil, err
	}
	return &Config{texts: texts}, nil
}

// NewConfig - настройки с уже готовыми текстами
func NewConfig(texts *Texts) *Config {
	return &Config{texts: texts}
}

// Get - текущие тексты. Возвращенное значение не изменяется после обновления настроек.
func (c *Config) Get() *Texts {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.texts
}

// UpdateTexts - перечитать файл. При ошибке остаются прежние тексты.
func (c *Config) UpdateTexts(path string) error {
	texts, err := loadTexts(path)
	if err != nil {
		return err
	}

	c.lock.Lock()
	c.texts = texts
	c.lock.Unlock()

	logger.Event("Тексты бота обновлены:", path)
	return nil
}

func loadTexts(path string) (*Texts, error) {
	texts := &Texts{}

	if path != "" {
		input, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("Файл с текстами бота не найден, используются тексты по умолчанию:", path)
		case err != nil:
			return nil, err
		default:
			if err := yaml.NewDecoder(bytes.NewBuffer(input)).Decode(texts); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("не корректный файл с текстами бота %s: %w", path, err)
			}
		}
	}

	texts.setDefault()

	return texts, texts.check()
}

// проверка что служебные кнопки различимы между собой
// после той же нормализации, что и при поиске кнопки по тексту
func (t *Texts) check() error {
	labels := map[string]string{
		"support":          t.Buttons.Support,
		"back":             t.Buttons.Back,
		"home":             t.Buttons.Home,
		"new_conversation": t.Buttons.NewConversation,
		"my_conversations": t.Buttons.MyConversations,
	}

	seen := make(map[string]string, len(labels))
	for name, label := range labels {
		key := strings.ToLower(strings.TrimSpace(norm.NFKC.String(label)))
		if key == "" {
			return fmt.Errorf("текст кнопки %s не может быть пустым", name)
		}
		if other, exist := seen[key]; exist {
			return fmt.Errorf("кнопки %s и %s имеют одинаковый текст: %s", name, other, label)
		}
		seen[key] = name
	}
	return nil
}

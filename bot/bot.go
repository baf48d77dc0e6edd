package bot

import (
	"context"
	"net/http"
	"time"

	"support-nav-bot/internal/connect/messages"
	"support-nav-bot/internal/connect/requests"
	"support-nav-bot/internal/logger"
	"support-nav-bot/internal/navigation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ограничение времени на обработку одного сообщения пользователя
const processTimeout = time.Minute

type (
	// Sender - отправка сообщений пользователю через мессенджер
	Sender interface {
		Send(ctx context.Context, userID int64, text string, keyboard *requests.Keyboard) error
		SendImage(ctx context.Context, userID int64, imageUrl string) error
	}

	// Handler - обработчик сообщений пользователя
	Handler interface {
		Start(ctx context.Context, userID int64) navigation.View
		HandleText(ctx context.Context, userID int64, text string) navigation.View
	}

	Bot struct {
		handler Handler
		// отправка по линиям мессенджера
		senders map[uuid.UUID]Sender
		// сообщения одного пользователя обрабатываются по очереди
		locks *userLocks
	}
)

func New(handler Handler, senders map[uuid.UUID]Sender) *Bot {
	return &Bot{
		handler: handler,
		senders: senders,
		locks:   newUserLocks(),
	}
}

// Receive - прием событий от мессенджера. Отвечаем сразу, обработка идет в фоне.
func (b *Bot) Receive(c *gin.Context) {
	var msg messages.Message
	if err := c.BindJSON(&msg); err != nil {
		logger.Warning("Error while receive message", err)
		return
	}

	logger.Debug("Receive message:", msg)

	// реагируем только на сообщения пользователя
	if !msg.IsFromUser() {
		c.Status(http.StatusOK)
		return
	}

	sender, ok := b.senders[msg.LineID]
	if !ok {
		logger.Warning("Message from unknown line", msg.LineID)
		c.Status(http.StatusOK)
		return
	}

	go b.Process(sender, msg)

	c.Status(http.StatusOK)
}

// Process - обработать событие и отправить ответ пользователю
func (b *Bot) Process(sender Sender, msg messages.Message) {
	unlock := b.locks.Lock(msg.UserID)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	var view navigation.View
	switch {
	case msg.IsStart():
		view = b.handler.Start(ctx, msg.UserID)
	case msg.IsText():
		view = b.handler.HandleText(ctx, msg.UserID, msg.Text)
	default:
		logger.Debug("Skip message with type", msg.MessageType)
		return
	}

	Deliver(ctx, sender, msg.UserID, view)
}

// Deliver - отправить экран пользователю. Ошибка отправки изображения
// не прерывает отправку остальных изображений и текста.
func Deliver(ctx context.Context, sender Sender, userID int64, view navigation.View) {
	for _, image := range view.Images {
		if err := sender.SendImage(ctx, userID, image); err != nil {
			logger.Warning("Не удалось отправить фото", image, "пользователю", userID, err)
		}
	}

	if view.Text == "" {
		return
	}
	if err := sender.Send(ctx, userID, view.Text, view.Keyboard); err != nil {
		logger.Warning("Не удалось отправить сообщение пользователю", userID, err)
	}
}

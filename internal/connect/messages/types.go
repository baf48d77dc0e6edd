package messages

import (
	"strings"

	"github.com/google/uuid"
)

type MessageType int

const (
	MESSAGE_TEXT                    MessageType = 1
	MESSAGE_FILE                    MessageType = 70
	MESSAGE_TREATMENT_START_BY_USER MessageType = 80
	MESSAGE_TREATMENT_CLOSE         MessageType = 82
)

// команда начала работы с ботом
const START_COMMAND = "/start"

type (
	// Message - событие от мессенджера
	Message struct {
		LineID uuid.UUID `json:"line_id" binding:"required"`
		UserID int64     `json:"user_id" binding:"required"`

		MessageID     uuid.UUID   `json:"message_id"`
		MessageType   MessageType `json:"message_type" binding:"required"`
		MessageAuthor *int64      `json:"author_id" binding:"omitempty"`
		MessageTime   string      `json:"message_time"`
		Text          string      `json:"text"`
	}
)

// IsStart - пользователь начал работу с ботом
func (msg *Message) IsStart() bool {
	if msg.MessageType == MESSAGE_TREATMENT_START_BY_USER {
		return true
	}
	return msg.MessageType == MESSAGE_TEXT && strings.TrimSpace(msg.Text) == START_COMMAND
}

// IsFromUser - сообщение написал сам пользователь, а не специалист или бот
func (msg *Message) IsFromUser() bool {
	return msg.MessageAuthor == nil || *msg.MessageAuthor == msg.UserID
}

// IsText - текстовое сообщение пользователя
func (msg *Message) IsText() bool {
	return msg.MessageType == MESSAGE_TEXT
}

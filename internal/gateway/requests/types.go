package requests

type (
	LoginRequest struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		TelegramID int64  `json:"telegram_id"`
	}

	CreateTicketRequest struct {
		ClientID         int64  `json:"client_id"`
		IsActive         bool   `json:"is_active"`
		ConversationName string `json:"conversation_name"`
	}

	SendMessageRequest struct {
		Text string `json:"text"`
	}
)

package response

type (
	// ContentNode - узел дерева контента
	ContentNode struct {
		ID      int64        `json:"id"`
		Text    string       `json:"text"`
		Title   string       `json:"title"`
		Images  []string     `json:"images"`
		Buttons []NodeButton `json:"buttons"`
	}

	// NodeButton - кнопка узла. Кнопка без next_node_id никуда не ведет и не показывается.
	NodeButton struct {
		Text       string `json:"text"`
		NextNodeID *int64 `json:"next_node_id"`
	}

	// NodeResponse - ответ на запрос узла по id
	NodeResponse struct {
		Node *ContentNode `json:"node"`
	}

	// User - пользователь сервиса контента
	User struct {
		ID         int64  `json:"id"`
		Username   string `json:"username"`
		TelegramID int64  `json:"telegram_id,omitempty"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}

	// Ticket - беседа с поддержкой
	Ticket struct {
		ID               int64   `json:"id"`
		ConversationName *string `json:"conversation_name"`
	}

	CreateTicketResponse struct {
		TicketID *int64 `json:"ticket_id"`
	}

	// Message - сообщение в беседе
	Message struct {
		SenderID  int64  `json:"sender_id"`
		CreatedAt string `json:"created_at"`
		Text      string `json:"text"`
	}

	SendStatus struct {
		Status string `json:"status"`
	}
)

const STATUS_SUCCESS = "success"

// HasChildren - узел является меню, а не конечной статьей
func (n *ContentNode) HasChildren() bool {
	return len(n.Buttons) > 0
}

func (s SendStatus) IsSuccess() bool {
	return s.Status == STATUS_SUCCESS
}

package cache

import (
	"support-nav-bot/internal/database"
	"support-nav-bot/internal/gateway/response"
)

type (
	// Session - набор данных привязанных к пользователю бота
	Session struct {
		// история переходов от корня до текущего экрана
		History []database.NavAction `json:"history"`

		// текущий режим ввода
		Mode database.FlowMode `json:"mode"`
		// имя пользователя, пока ждем пароль
		PendingUsername string `json:"pending_username,omitempty"`
		// беседа, в которую пишет пользователь
		ActiveTicketID int64 `json:"active_ticket_id,omitempty"`

		// токен доступа к сервису контента
		Token string `json:"token,omitempty"`
		// информация о пользователе из сервиса контента
		User *response.User `json:"user,omitempty"`
	}
)

func (s Session) AwaitingUsername() bool {
	return s.Mode == database.FLOW_AWAIT_USERNAME
}

// AwaitingPassword - ждем ли пароль, и для какого имени пользователя
func (s Session) AwaitingPassword() (string, bool) {
	if s.Mode != database.FLOW_AWAIT_PASSWORD {
		return "", false
	}
	return s.PendingUsername, true
}

func (s Session) CreatingConversation() bool {
	return s.Mode == database.FLOW_CREATE_CONVERSATION
}

func (s Session) WaitingForMessage() bool {
	return s.Mode == database.FLOW_TICKET_REPLY
}

// ActiveTicket - беседа, в которую уходят сообщения пользователя
func (s Session) ActiveTicket() (int64, bool) {
	if s.Mode != database.FLOW_TICKET_REPLY || s.ActiveTicketID == 0 {
		return 0, false
	}
	return s.ActiveTicketID, true
}

// StartLogin - начать ввод учетных данных, все прочие режимы сбрасываются
func (s *Session) StartLogin() {
	s.clearFlow()
	s.Mode = database.FLOW_AWAIT_USERNAME
}

// AwaitPassword - имя пользователя получено, ждем пароль
func (s *Session) AwaitPassword(username string) {
	s.clearFlow()
	s.Mode = database.FLOW_AWAIT_PASSWORD
	s.PendingUsername = username
}

// TakePendingUsername - забрать сохраненное имя пользователя и выйти из режима ввода пароля
func (s *Session) TakePendingUsername() string {
	username := s.PendingUsername
	s.clearFlow()
	return username
}

func (s *Session) StartConversationCreation() {
	s.clearFlow()
	s.Mode = database.FLOW_CREATE_CONVERSATION
}

// FinishConversationCreation - название беседы получено
func (s *Session) FinishConversationCreation() {
	if s.Mode == database.FLOW_CREATE_CONVERSATION {
		s.clearFlow()
	}
}

// OpenTicket - пользователь открыл беседу, следующие сообщения уходят в нее
func (s *Session) OpenTicket(ticketID int64) {
	s.clearFlow()
	s.Mode = database.FLOW_TICKET_REPLY
	s.ActiveTicketID = ticketID
}

// LeaveTicket - выйти из беседы. Другие режимы не трогаем.
func (s *Session) LeaveTicket() {
	if s.Mode == database.FLOW_TICKET_REPLY {
		s.clearFlow()
	}
	s.ActiveTicketID = 0
}

// ResetFlow - сбросить любой режим ввода
func (s *Session) ResetFlow() {
	s.clearFlow()
}

func (s *Session) clearFlow() {
	s.Mode = database.FLOW_NONE
	s.PendingUsername = ""
	s.ActiveTicketID = 0
}

// Authorize - сохранить данные успешной авторизации
func (s *Session) Authorize(token string, user *response.User) {
	s.Token = token
	s.User = user
}

package database

import "strconv"

// ActionKind - вид навигационного действия
type ActionKind int

const (
	// переход в узел контента
	ACTION_NODE ActionKind = iota + 1
	// меню поддержки
	ACTION_SUPPORT
	// создание новой беседы
	ACTION_NEW_CONVERSATION
	// список бесед пользователя
	ACTION_LIST_CONVERSATIONS
	// открытая беседа
	ACTION_TICKET
	ACTION_BACK
	ACTION_HOME
)

func (k ActionKind) String() string {
	switch k {
	case ACTION_NODE:
		return "node"
	case ACTION_SUPPORT:
		return "support"
	case ACTION_NEW_CONVERSATION:
		return "new_conversation"
	case ACTION_LIST_CONVERSATIONS:
		return "list_conversations"
	case ACTION_TICKET:
		return "ticket"
	case ACTION_BACK:
		return "back"
	case ACTION_HOME:
		return "home"
	}
	return "unknown"
}

// FlowMode - режим ввода, в котором находится пользователь.
// Одновременно может быть активен только один режим.
type FlowMode int

const (
	FLOW_NONE FlowMode = iota
	// ожидаем имя пользователя
	FLOW_AWAIT_USERNAME
	// ожидаем пароль, имя пользователя уже получено
	FLOW_AWAIT_PASSWORD
	// ожидаем название новой беседы
	FLOW_CREATE_CONVERSATION
	// ожидаем сообщение в открытую беседу
	FLOW_TICKET_REPLY
)

func (m FlowMode) String() string {
	switch m {
	case FLOW_NONE:
		return "none"
	case FLOW_AWAIT_USERNAME:
		return "await_username"
	case FLOW_AWAIT_PASSWORD:
		return "await_password"
	case FLOW_CREATE_CONVERSATION:
		return "create_conversation"
	case FLOW_TICKET_REPLY:
		return "ticket_reply"
	}
	return "unknown"
}

// NavAction - навигационное действие. ID заполнен только для ACTION_NODE и ACTION_TICKET.
// Этими же значениями заполняется история переходов пользователя.
type NavAction struct {
	Kind ActionKind `json:"kind"`
	ID   int64      `json:"id,omitempty"`
}

func NodeAction(id int64) NavAction   { return NavAction{Kind: ACTION_NODE, ID: id} }
func TicketAction(id int64) NavAction { return NavAction{Kind: ACTION_TICKET, ID: id} }
func SupportAction() NavAction        { return NavAction{Kind: ACTION_SUPPORT} }
func NewConversationAction() NavAction {
	return NavAction{Kind: ACTION_NEW_CONVERSATION}
}
func ListConversationsAction() NavAction {
	return NavAction{Kind: ACTION_LIST_CONVERSATIONS}
}
func BackAction() NavAction { return NavAction{Kind: ACTION_BACK} }
func HomeAction() NavAction { return NavAction{Kind: ACTION_HOME} }

func (a NavAction) String() string {
	switch a.Kind {
	case ACTION_NODE, ACTION_TICKET:
		return a.Kind.String() + ":" + strconv.FormatInt(a.ID, 10)
	}
	return a.Kind.String()
}

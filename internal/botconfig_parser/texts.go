package botconfig_parser

import (
	"strconv"
	"strings"
)

// Texts - подписи кнопок и сообщения бота
type Texts struct {
	Buttons  Buttons  `yaml:"buttons"`
	Messages Messages `yaml:"messages"`
}

type Buttons struct {
	// ✉ Написать в поддержку
	Support string `yaml:"support"`
	// ⬅️ Назад
	Back string `yaml:"back"`
	// 🏠 В начало
	Home string `yaml:"home"`
	// ➕ Новая беседа
	NewConversation string `yaml:"new_conversation"`
	// 📂 Мои беседы
	MyConversations string `yaml:"my_conversations"`
	// префикс кнопки беседы в списке
	TicketPrefix string `yaml:"ticket_prefix"`
	// название беседы без имени, {id} заменяется на номер беседы
	UnnamedTicket string `yaml:"unnamed_ticket"`
	// подпись кнопки узла без текста
	Unknown string `yaml:"unknown"`
}

type Messages struct {
	AskUsername string `yaml:"ask_username"`
	AskPassword string `yaml:"ask_password"`
	LoginFailed string `yaml:"login_failed"`

	RootDefaultText string `yaml:"root_default_text"`
	RootUnavailable string `yaml:"root_unavailable"`
	NodeDefaultText string `yaml:"node_default_text"`
	NodeUnavailable string `yaml:"node_unavailable"`

	SupportMenu              string `yaml:"support_menu"`
	AskConversationName      string `yaml:"ask_conversation_name"`
	ConversationsTitle       string `yaml:"conversations_title"`
	NoConversations          string `yaml:"no_conversations"`
	ConversationsUnavailable string `yaml:"conversations_unavailable"`
	// {title} заменяется на название беседы
	ConversationCreated      string `yaml:"conversation_created"`
	ConversationCreateFailed string `yaml:"conversation_create_failed"`

	// {id} заменяется на номер беседы
	TicketHeader      string `yaml:"ticket_header"`
	TicketEmpty       string `yaml:"ticket_empty"`
	TicketUnavailable string `yaml:"ticket_unavailable"`
	SenderYou         string `yaml:"sender_you"`
	SenderAgent       string `yaml:"sender_agent"`
	AskMessage        string `yaml:"ask_message"`
	MessageSent       string `yaml:"message_sent"`
	MessageSendFailed string `yaml:"message_send_failed"`
	NoActiveTicket    string `yaml:"no_active_ticket"`

	CommandUnknown string `yaml:"command_unknown"`
}

// TicketLabel - подпись кнопки беседы
func (t *Texts) TicketLabel(ticketID int64, name *string) string {
	title := ""
	if name != nil {
		title = *name
	}
	if title == "" {
		title = strings.ReplaceAll(t.Buttons.UnnamedTicket, "{id}", strconv.FormatInt(ticketID, 10))
	}
	return t.Buttons.TicketPrefix + title
}

func (t *Texts) TicketHeader(ticketID int64) string {
	return strings.ReplaceAll(t.Messages.TicketHeader, "{id}", strconv.FormatInt(ticketID, 10))
}

func (t *Texts) ConversationCreated(title string) string {
	return strings.ReplaceAll(t.Messages.ConversationCreated, "{title}", title)
}

// применить значения по умолчанию для незаполненных текстов
func (t *Texts) setDefault() {
	setDefault := func(value *string, default_ string) {
		if *value == "" {
			*value = default_
		}
	}

	b := &t.Buttons
	setDefault(&b.Support, "✉ Написать в поддержку")
	setDefault(&b.Back, "⬅️ Назад")
	setDefault(&b.Home, "🏠 В начало")
	setDefault(&b.NewConversation, "➕ Новая беседа")
	setDefault(&b.MyConversations, "📂 Мои беседы")
	setDefault(&b.TicketPrefix, "💬 ")
	setDefault(&b.UnnamedTicket, "Беседа #{id}")
	setDefault(&b.Unknown, "Неизвестно")

	m := &t.Messages
	setDefault(&m.AskUsername, "Введите ваше имя пользователя:")
	setDefault(&m.AskPassword, "Введите ваш пароль:")
	setDefault(&m.LoginFailed, "Неверные учетные данные. Попробуйте снова с /start.")
	setDefault(&m.RootDefaultText, "Выберите раздел:")
	setDefault(&m.RootUnavailable, "Не удалось загрузить главное меню. Попробуйте позже.")
	setDefault(&m.NodeDefaultText, "Раздел")
	setDefault(&m.NodeUnavailable, "Не удалось найти информацию по этому разделу. Попробуйте позже.")
	setDefault(&m.SupportMenu, "Выберите действие:")
	setDefault(&m.AskConversationName, "Введите название новой беседы:")
	setDefault(&m.ConversationsTitle, "Ваши беседы:")
	setDefault(&m.NoConversations, "У вас нет бесед.")
	setDefault(&m.ConversationsUnavailable, "Не удалось загрузить список бесед. Попробуйте позже.")
	setDefault(&m.ConversationCreated, "✅ Беседа «{title}» создана. Выберите её из списка, чтобы продолжить.")
	setDefault(&m.ConversationCreateFailed, "Не удалось создать беседу. Попробуйте позже.")
	setDefault(&m.TicketHeader, "💬 Сообщения в беседе #{id}:")
	setDefault(&m.TicketEmpty, "Беседа пуста.")
	setDefault(&m.TicketUnavailable, "Не удалось загрузить сообщения беседы. Попробуйте позже.")
	setDefault(&m.SenderYou, "Вы")
	setDefault(&m.SenderAgent, "Менеджер")
	setDefault(&m.AskMessage, "✏️ Напишите новое сообщение:")
	setDefault(&m.MessageSent, "✅ Сообщение отправлено.")
	setDefault(&m.MessageSendFailed, "Не удалось отправить сообщение. Попробуйте позже.")
	setDefault(&m.NoActiveTicket, "Нет выбранной беседы. Выберите её из списка.")
	setDefault(&m.CommandUnknown, "Неизвестная команда. Используйте кнопки.")
}

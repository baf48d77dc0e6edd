package keyboard

import (
	"support-nav-bot/internal/botconfig_parser"
	"support-nav-bot/internal/connect/requests"
	"support-nav-bot/internal/database"
	"support-nav-bot/internal/gateway/response"
)

// кнопок в строке клавиатуры узла
const buttonsPerRow = 2

// Markup - клавиатура и действия ее кнопок
type Markup struct {
	Keyboard requests.Keyboard
	Updates  Updates
}

func newMarkup() Markup {
	return Markup{Updates: make(Updates)}
}

func (m *Markup) addRow(keys ...string) {
	row := make([]requests.KeyboardKey, 0, len(keys))
	for _, text := range keys {
		row = append(row, requests.KeyboardKey{Text: text})
	}
	m.Keyboard = append(m.Keyboard, row)
}

func (m *Markup) addNavigation(t *botconfig_parser.Texts) {
	m.addRow(t.Buttons.Back, t.Buttons.Home)
	m.Updates.add(t.Buttons.Back, database.BackAction())
	m.Updates.add(t.Buttons.Home, database.HomeAction())
}

// NodeKeyboard - клавиатура узла контента: дочерние узлы по два в строке,
// кнопка поддержки и, если узел не корневой, кнопки "назад" и "в начало"
func NodeKeyboard(t *botconfig_parser.Texts, node *response.ContentNode, isRoot bool) Markup {
	m := newMarkup()

	row := make([]string, 0, buttonsPerRow)
	for _, btn := range node.Buttons {
		if btn.NextNodeID == nil {
			continue
		}

		text := btn.Text
		if text == "" {
			text = t.Buttons.Unknown
		}
		m.Updates.add(text, database.NodeAction(*btn.NextNodeID))

		row = append(row, text)
		if len(row) == buttonsPerRow {
			m.addRow(row...)
			row = row[:0]
		}
	}
	if len(row) > 0 {
		m.addRow(row...)
	}

	m.addRow(t.Buttons.Support)
	m.Updates.add(t.Buttons.Support, database.SupportAction())

	if !isRoot {
		m.addNavigation(t)
	}

	return m
}

// SupportKeyboard - меню поддержки
func SupportKeyboard(t *botconfig_parser.Texts) Markup {
	m := newMarkup()

	m.addRow(t.Buttons.NewConversation)
	m.Updates.add(t.Buttons.NewConversation, database.NewConversationAction())

	m.addRow(t.Buttons.MyConversations)
	m.Updates.add(t.Buttons.MyConversations, database.ListConversationsAction())

	m.addNavigation(t)

	return m
}

// TicketsKeyboard - список бесед, по одной в строке
func TicketsKeyboard(t *botconfig_parser.Texts, tickets []response.Ticket) Markup {
	m := newMarkup()

	for _, ticket := range tickets {
		label := t.TicketLabel(ticket.ID, ticket.ConversationName)
		m.addRow(label)
		m.Updates.add(label, database.TicketAction(ticket.ID))
	}

	m.addNavigation(t)

	return m
}

// TicketChatKeyboard - клавиатура открытой беседы
func TicketChatKeyboard(t *botconfig_parser.Texts) Markup {
	m := newMarkup()
	m.addNavigation(t)
	return m
}

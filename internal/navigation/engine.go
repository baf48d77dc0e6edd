package navigation

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"support-nav-bot/internal/botconfig_parser"
	"support-nav-bot/internal/cache"
	"support-nav-bot/internal/connect/requests"
	"support-nav-bot/internal/database"
	gwclient "support-nav-bot/internal/gateway/client"
	gwrequests "support-nav-bot/internal/gateway/requests"
	"support-nav-bot/internal/gateway/response"
	"support-nav-bot/internal/keyboard"
	"support-nav-bot/internal/logger"
)

// Gateway - сервис контента и бесед
type Gateway interface {
	Login(ctx context.Context, username, password string, chatUserID int64) (response.LoginResponse, error)
	GetRootNode(ctx context.Context) (*response.ContentNode, error)
	GetContentNode(ctx context.Context, nodeID int64) (*response.ContentNode, error)
	GetTickets(ctx context.Context) ([]response.Ticket, error)
	CreateTicket(ctx context.Context, data gwrequests.CreateTicketRequest) (int64, error)
	GetTicketMessages(ctx context.Context, ticketID int64) ([]response.Message, error)
	SendMessage(ctx context.Context, ticketID int64, data gwrequests.SendMessageRequest) error
}

// Engine - навигация пользователей по дереву контента и беседам поддержки
type Engine struct {
	gateway Gateway
	store   *cache.Store
	index   *keyboard.Index
	texts   *botconfig_parser.Config
}

func New(gateway Gateway, store *cache.Store, index *keyboard.Index, texts *botconfig_parser.Config) *Engine {
	return &Engine{
		gateway: gateway,
		store:   store,
		index:   index,
		texts:   texts,
	}
}

// состояние обработки одного сообщения пользователя
type request struct {
	ctx     context.Context
	userID  int64
	session *cache.Session
	texts   *botconfig_parser.Texts
}

func (e *Engine) begin(ctx context.Context, userID int64) *request {
	session := e.store.Get(userID)
	return &request{
		ctx:     gwclient.WithToken(ctx, session.Token),
		userID:  userID,
		session: &session,
		texts:   e.texts.Get(),
	}
}

func (e *Engine) commit(r *request) {
	if err := e.store.Set(r.userID, r.session); err != nil {
		logger.Warning("Error while save session", r.userID, err)
	}
}

// Apply - выполнить навигационное действие пользователя.
// back выставляется при повторном показе экрана из истории по кнопке "назад".
func (e *Engine) Apply(ctx context.Context, userID int64, action database.NavAction, back bool) View {
	r := e.begin(ctx, userID)
	defer e.commit(r)

	return e.apply(r, action, back)
}

func (e *Engine) apply(r *request, action database.NavAction, back bool) View {
	logger.Debug("apply", fmt.Sprint(r.userID), action.String(), fmt.Sprint(back))

	switch action.Kind {
	case database.ACTION_SUPPORT:
		return e.openSupportMenu(r, back)
	case database.ACTION_NEW_CONVERSATION:
		return e.requestNewConversation(r)
	case database.ACTION_LIST_CONVERSATIONS:
		return e.showConversations(r, back)
	case database.ACTION_TICKET:
		return e.showTicket(r, action.ID, back)
	case database.ACTION_BACK:
		return e.back(r)
	case database.ACTION_HOME:
		return e.home(r)
	case database.ACTION_NODE:
		return e.showNode(r, action.ID, back)
	}

	logger.Warning("Unknown navigation action", action)
	return textView(r.texts.Messages.CommandUnknown)
}

// запомнить действия показанной клавиатуры
func (e *Engine) render(m keyboard.Markup) *requests.Keyboard {
	e.index.Merge(m.Updates)
	kb := m.Keyboard
	return &kb
}

func (e *Engine) openSupportMenu(r *request, back bool) View {
	if !back {
		r.session.HistoryPush(database.SupportAction())
	}
	return View{
		Text:     r.texts.Messages.SupportMenu,
		Keyboard: e.render(keyboard.SupportKeyboard(r.texts)),
	}
}

func (e *Engine) requestNewConversation(r *request) View {
	r.session.StartConversationCreation()
	return textView(r.texts.Messages.AskConversationName)
}

func (e *Engine) showConversations(r *request, back bool) View {
	if !back {
		r.session.HistoryPush(database.ListConversationsAction())
	}

	tickets, err := e.gateway.GetTickets(r.ctx)
	if err != nil {
		logger.Warning("Error while get tickets for", r.userID, err)
		return View{
			Text:     r.texts.Messages.ConversationsUnavailable,
			Keyboard: e.render(keyboard.TicketChatKeyboard(r.texts)),
		}
	}

	if len(tickets) == 0 {
		return View{
			Text:     r.texts.Messages.NoConversations,
			Keyboard: e.render(keyboard.TicketChatKeyboard(r.texts)),
		}
	}

	return View{
		Text:     r.texts.Messages.ConversationsTitle,
		Keyboard: e.render(keyboard.TicketsKeyboard(r.texts, tickets)),
	}
}

func (e *Engine) showTicket(r *request, ticketID int64, back bool) View {
	messages, err := e.gateway.GetTicketMessages(r.ctx, ticketID)
	if !back {
		r.session.HistoryPush(database.TicketAction(ticketID))
	}
	// открытая беседа всегда ждет сообщение пользователя
	r.session.OpenTicket(ticketID)

	var text string
	switch {
	case err != nil:
		logger.Warning("Error while get messages of ticket", ticketID, err)
		text = r.texts.Messages.TicketUnavailable
	case len(messages) == 0:
		text = r.texts.Messages.TicketEmpty
	default:
		text = e.transcript(r, ticketID, messages)
	}

	return View{
		Text:     text + "\n\n" + r.texts.Messages.AskMessage,
		Keyboard: e.render(keyboard.TicketChatKeyboard(r.texts)),
	}
}

// история сообщений беседы по времени
func (e *Engine) transcript(r *request, ticketID int64, messages []response.Message) string {
	messages = chronological(messages)

	lines := make([]string, 0, len(messages)+1)
	lines = append(lines, r.texts.TicketHeader(ticketID))
	for _, m := range messages {
		sender := r.texts.Messages.SenderAgent
		if e.isOwnMessage(r, m) {
			sender = r.texts.Messages.SenderYou
		}
		lines = append(lines, fmt.Sprintf("🕒 %s\n👤 %s:\n%s", m.CreatedAt, sender, m.Text))
	}

	return strings.Join(lines, "\n\n")
}

// форматы created_at: с часовым поясом и без него (считается UTC)
var messageTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func parseMessageTime(value string) (time.Time, bool) {
	for _, layout := range messageTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// chronological - сообщения по возрастанию времени.
// Если хотя бы одно время не разобрать, остается порядок сервиса.
func chronological(messages []response.Message) []response.Message {
	times := make([]time.Time, len(messages))
	for i, m := range messages {
		t, ok := parseMessageTime(m.CreatedAt)
		if !ok {
			logger.Debug("Unparsed message time, keep server order:", m.CreatedAt)
			return messages
		}
		times[i] = t
	}

	order := make([]int, len(messages))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return times[a].Compare(times[b])
	})

	sorted := make([]response.Message, 0, len(messages))
	for _, i := range order {
		sorted = append(sorted, messages[i])
	}
	return sorted
}

// сообщение написал сам пользователь: отправитель совпадает с пользователем чата
// или с его учетной записью в сервисе
func (e *Engine) isOwnMessage(r *request, m response.Message) bool {
	if m.SenderID == r.userID {
		return true
	}
	return r.session.User != nil && r.session.User.ID != 0 && r.session.User.ID == m.SenderID
}

func (e *Engine) back(r *request) View {
	r.session.LeaveTicket()

	if !r.session.HistoryBack() {
		return e.home(r)
	}

	top, _ := r.session.HistoryTop()
	return e.apply(r, top, true)
}

func (e *Engine) home(r *request) View {
	r.session.ResetFlow()

	root, err := e.gateway.GetRootNode(r.ctx)
	if err != nil {
		logger.Warning("Error while get root node for", r.userID, err)
		return textView(r.texts.Messages.RootUnavailable)
	}

	r.session.HistoryReset(root.ID)

	text := root.Text
	if text == "" {
		text = r.texts.Messages.RootDefaultText
	}

	return View{
		Images:   root.Images,
		Text:     text,
		Keyboard: e.render(keyboard.NodeKeyboard(r.texts, root, true)),
	}
}

func (e *Engine) showNode(r *request, nodeID int64, back bool) View {
	node, err := e.gateway.GetContentNode(r.ctx, nodeID)
	if err != nil {
		logger.Warning("Error while get content node", nodeID, err)
		return textView(r.texts.Messages.NodeUnavailable)
	}

	// статья без дочерних кнопок в историю не попадает
	if !node.HasChildren() {
		return textView(fmt.Sprintf("📌 %s\n\n%s", node.Title, node.Text))
	}

	if !back {
		r.session.HistoryPushNode(nodeID)
	}

	text := node.Text
	if text == "" {
		text = r.texts.Messages.NodeDefaultText
	}

	return View{
		Images:   node.Images,
		Text:     text,
		Keyboard: e.render(keyboard.NodeKeyboard(r.texts, node, r.session.HistoryIsRoot(nodeID))),
	}
}

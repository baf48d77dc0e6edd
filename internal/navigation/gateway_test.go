package navigation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"support-nav-bot/internal/botconfig_parser"
	"support-nav-bot/internal/cache"
	"support-nav-bot/internal/database"
	gwclient "support-nav-bot/internal/gateway/client"
	gwrequests "support-nav-bot/internal/gateway/requests"
	"support-nav-bot/internal/gateway/response"
	"support-nav-bot/internal/keyboard"

	"github.com/allegro/bigcache/v3"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("gateway unavailable")

type sentMessage struct {
	ticketID int64
	text     string
}

// fakeGateway - сервис контента в памяти
type fakeGateway struct {
	mu sync.Mutex

	rootID int64
	nodes  map[int64]*response.ContentNode

	tickets  []response.Ticket
	messages map[int64][]response.Message
	nextID   int64

	failRoot    bool
	failNodes   map[int64]bool
	failTickets bool
	failCreate  bool
	failSend    bool

	loginCalls    []string
	rootCalls     int
	created       []gwrequests.CreateTicketRequest
	sent          []sentMessage
	tokensSeen    []string
	ticketFetches int
}

func ptr[T any](v T) *T { return &v }

func btn(text string, next int64) response.NodeButton {
	return response.NodeButton{Text: text, NextNodeID: ptr(next)}
}

// newFakeGateway - дерево:
//
//	1 Главное меню: Тарифы(2), Контакты(3, статья), Помощь(4)
//	2 Тарифы: Базовый(5, статья), Про(6, статья)
//	4 Помощь: FAQ(7)
//	7 FAQ: Вопрос(8, статья)
func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		rootID: 1,
		nodes: map[int64]*response.ContentNode{
			1: {ID: 1, Text: "Главное меню", Images: []string{"https://img.example.com/logo.png"}, Buttons: []response.NodeButton{
				btn("Тарифы", 2), btn("Контакты", 3), btn("Помощь", 4),
			}},
			2: {ID: 2, Text: "Выберите тариф", Buttons: []response.NodeButton{btn("Базовый", 5), btn("Про", 6)}},
			3: {ID: 3, Title: "Контакты", Text: "Телефон 123"},
			4: {ID: 4, Text: "Помощь", Buttons: []response.NodeButton{btn("FAQ", 7)}},
			5: {ID: 5, Title: "Базовый", Text: "100 руб"},
			6: {ID: 6, Title: "Про", Text: "500 руб"},
			7: {ID: 7, Text: "Частые вопросы", Buttons: []response.NodeButton{btn("Вопрос", 8)}},
			8: {ID: 8, Title: "Вопрос", Text: "Ответ"},
		},
		messages:  make(map[int64][]response.Message),
		failNodes: make(map[int64]bool),
		nextID:    100,
	}
}

func (g *fakeGateway) seeToken(ctx context.Context) {
	g.tokensSeen = append(g.tokensSeen, gwclient.TokenFromContext(ctx))
}

func (g *fakeGateway) Login(ctx context.Context, username, password string, chatUserID int64) (response.LoginResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.loginCalls = append(g.loginCalls, username+":"+password)
	if username == "alice" && password == "secret" {
		return response.LoginResponse{Token: "token-alice", User: &response.User{ID: 1000, Username: "alice"}}, nil
	}
	return response.LoginResponse{}, &gwclient.HttpError{Url: "/auth/login", Code: 401, Message: "bad credentials"}
}

func (g *fakeGateway) GetRootNode(ctx context.Context) (*response.ContentNode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rootCalls++
	g.seeToken(ctx)
	if g.failRoot {
		return nil, errUnavailable
	}
	node := *g.nodes[g.rootID]
	return &node, nil
}

func (g *fakeGateway) GetContentNode(ctx context.Context, nodeID int64) (*response.ContentNode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seeToken(ctx)
	if g.failNodes[nodeID] {
		return nil, errUnavailable
	}
	node, ok := g.nodes[nodeID]
	if !ok {
		return nil, gwclient.ErrMalformedResponse
	}
	cp := *node
	return &cp, nil
}

func (g *fakeGateway) GetTickets(ctx context.Context) ([]response.Ticket, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failTickets {
		return nil, errUnavailable
	}
	return append([]response.Ticket(nil), g.tickets...), nil
}

func (g *fakeGateway) CreateTicket(ctx context.Context, data gwrequests.CreateTicketRequest) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.created = append(g.created, data)
	if g.failCreate {
		return 0, errUnavailable
	}
	g.nextID++
	g.tickets = append(g.tickets, response.Ticket{ID: g.nextID, ConversationName: ptr(data.ConversationName)})
	return g.nextID, nil
}

func (g *fakeGateway) GetTicketMessages(ctx context.Context, ticketID int64) ([]response.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ticketFetches++
	return g.messages[ticketID], nil
}

func (g *fakeGateway) SendMessage(ctx context.Context, ticketID int64, data gwrequests.SendMessageRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failSend {
		return errUnavailable
	}
	g.sent = append(g.sent, sentMessage{ticketID: ticketID, text: data.Text})
	return nil
}

func newTestEngine(t *testing.T, gw Gateway) (*Engine, *cache.Store) {
	t.Helper()

	bc, err := bigcache.NewBigCache(database.InMemoryCacheConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bc.Close() })

	store := cache.NewStore(bc)
	texts := botconfig_parser.NewConfig(botconfig_parser.DefaultTexts())

	return New(gw, store, keyboard.NewIndex(), texts), store
}

func labels(v View) []string {
	if v.Keyboard == nil {
		return nil
	}
	return v.Keyboard.Labels()
}

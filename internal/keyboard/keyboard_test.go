package keyboard

import (
	"sync"
	"testing"

	"support-nav-bot/internal/botconfig_parser"
	"support-nav-bot/internal/database"
	"support-nav-bot/internal/gateway/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestNormalize(t *testing.T) {
	assert.Equal(t, "тарифы", Normalize("  Тарифы \n"))
	assert.Equal(t, "abc", Normalize("ＡＢＣ"))
	assert.Equal(t, Normalize("⬅️ Назад"), Normalize(" ⬅️ назад"))
}

func TestNodeKeyboard(t *testing.T) {
	texts := botconfig_parser.DefaultTexts()
	node := &response.ContentNode{ID: 1, Buttons: []response.NodeButton{
		{Text: "A", NextNodeID: ptr(2)},
		{Text: "B", NextNodeID: ptr(3)},
		{Text: "dead"},
		{Text: "", NextNodeID: ptr(4)},
	}}

	m := NodeKeyboard(texts, node, true)
	require.Len(t, m.Keyboard, 3)
	assert.Equal(t, []string{"A", "B", "Неизвестно", texts.Buttons.Support}, m.Keyboard.Labels())
	assert.Equal(t, Updates{
		"a":                            database.NodeAction(2),
		"b":                            database.NodeAction(3),
		"неизвестно":                   database.NodeAction(4),
		Normalize(texts.Buttons.Support): database.SupportAction(),
	}, m.Updates)

	m = NodeKeyboard(texts, node, false)
	require.Len(t, m.Keyboard, 4)
	assert.Equal(t, []string{texts.Buttons.Back, texts.Buttons.Home}, m.Keyboard[3:].Labels())
	assert.Equal(t, database.BackAction(), m.Updates[Normalize(texts.Buttons.Back)])
	assert.Equal(t, database.HomeAction(), m.Updates[Normalize(texts.Buttons.Home)])
}

func TestSupportKeyboard(t *testing.T) {
	texts := botconfig_parser.DefaultTexts()

	m := SupportKeyboard(texts)
	assert.Equal(t, []string{
		texts.Buttons.NewConversation,
		texts.Buttons.MyConversations,
		texts.Buttons.Back,
		texts.Buttons.Home,
	}, m.Keyboard.Labels())
	assert.Equal(t, database.NewConversationAction(), m.Updates[Normalize(texts.Buttons.NewConversation)])
	assert.Equal(t, database.ListConversationsAction(), m.Updates[Normalize(texts.Buttons.MyConversations)])
}

func TestTicketsKeyboard(t *testing.T) {
	texts := botconfig_parser.DefaultTexts()
	name := "Billing"
	empty := ""

	m := TicketsKeyboard(texts, []response.Ticket{
		{ID: 42, ConversationName: &name},
		{ID: 43},
		{ID: 44, ConversationName: &empty},
	})

	require.Len(t, m.Keyboard, 4)
	assert.Equal(t, []string{"💬 Billing", "💬 Беседа #43", "💬 Беседа #44", texts.Buttons.Back, texts.Buttons.Home}, m.Keyboard.Labels())
	assert.Equal(t, database.TicketAction(43), m.Updates[Normalize("💬 Беседа #43")])

	m = TicketChatKeyboard(texts)
	assert.Equal(t, []string{texts.Buttons.Back, texts.Buttons.Home}, m.Keyboard.Labels())
}

func TestIndexLastWriteWins(t *testing.T) {
	idx := NewIndex()

	idx.Merge(Updates{"a": database.NodeAction(2)})
	idx.Merge(Updates{"a": database.NodeAction(7), "b": database.TicketAction(1)})
	idx.Merge(nil)

	action, ok := idx.Resolve("  A ")
	require.True(t, ok)
	assert.Equal(t, database.NodeAction(7), action)
	assert.Equal(t, 2, idx.Len())

	_, ok = idx.Resolve("c")
	assert.False(t, ok)
}

func TestIndexConcurrentMerge(t *testing.T) {
	idx := NewIndex()
	texts := botconfig_parser.DefaultTexts()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx.Merge(SupportKeyboard(texts).Updates)
			_, _ = idx.Resolve(texts.Buttons.Back)
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, idx.Len())
}

package navigation

import (
	"context"
	"strings"

	"support-nav-bot/internal/database"
	gwclient "support-nav-bot/internal/gateway/client"
	gwrequests "support-nav-bot/internal/gateway/requests"
	"support-nav-bot/internal/keyboard"
	"support-nav-bot/internal/logger"
)

// Start - начать работу с ботом: запросить учетные данные.
// Прерывает любой режим ввода, в котором был пользователь.
func (e *Engine) Start(ctx context.Context, userID int64) View {
	r := e.begin(ctx, userID)
	defer e.commit(r)

	r.session.StartLogin()
	return textView(r.texts.Messages.AskUsername)
}

// HandleText - обработать текстовое сообщение пользователя.
// Режимы ввода проверяются строго по порядку, срабатывает первый подходящий.
func (e *Engine) HandleText(ctx context.Context, userID int64, text string) View {
	r := e.begin(ctx, userID)
	defer e.commit(r)

	normalized := keyboard.Normalize(text)

	if r.session.AwaitingUsername() {
		return e.captureUsername(r, text)
	}
	if username, ok := r.session.AwaitingPassword(); ok {
		return e.login(r, username, text)
	}

	switch normalized {
	case keyboard.Normalize(r.texts.Buttons.Back):
		return e.apply(r, database.BackAction(), false)
	case keyboard.Normalize(r.texts.Buttons.Home):
		return e.apply(r, database.HomeAction(), false)
	}

	if r.session.CreatingConversation() {
		return e.createConversation(r, text)
	}
	if r.session.WaitingForMessage() {
		return e.sendMessage(r, text)
	}

	action, ok := e.index.Resolve(text)
	if !ok {
		return textView(r.texts.Messages.CommandUnknown)
	}
	return e.apply(r, action, false)
}

func (e *Engine) captureUsername(r *request, text string) View {
	r.session.AwaitPassword(strings.TrimSpace(text))
	return textView(r.texts.Messages.AskPassword)
}

func (e *Engine) login(r *request, username, text string) View {
	// режим ввода пароля снимается при любом исходе
	r.session.TakePendingUsername()

	resp, err := e.gateway.Login(r.ctx, username, strings.TrimSpace(text), r.userID)
	if err != nil {
		logger.Warning("Error while login", username, err)
		return textView(r.texts.Messages.LoginFailed)
	}

	logger.Event("User logged in:", username, r.userID)
	r.session.Authorize(resp.Token, resp.User)
	r.ctx = gwclient.WithToken(r.ctx, resp.Token)

	return e.home(r)
}

func (e *Engine) createConversation(r *request, text string) View {
	title := strings.TrimSpace(text)
	r.session.FinishConversationCreation()

	ticketID, err := e.gateway.CreateTicket(r.ctx, gwrequests.CreateTicketRequest{
		ClientID:         r.userID,
		IsActive:         true,
		ConversationName: title,
	})
	if err != nil {
		logger.Warning("Error while create ticket", r.userID, err)
		return textView(r.texts.Messages.ConversationCreateFailed)
	}
	logger.Event("Ticket created:", ticketID, "by", r.userID)

	tickets, err := e.gateway.GetTickets(r.ctx)
	if err != nil {
		logger.Warning("Error while get tickets for", r.userID, err)
	}

	r.session.HistoryPush(database.ListConversationsAction())

	return View{
		Text:     r.texts.ConversationCreated(title),
		Keyboard: e.render(keyboard.TicketsKeyboard(r.texts, tickets)),
	}
}

func (e *Engine) sendMessage(r *request, text string) View {
	ticketID, ok := r.session.ActiveTicket()
	if !ok {
		return textView(r.texts.Messages.NoActiveTicket)
	}

	err := e.gateway.SendMessage(r.ctx, ticketID, gwrequests.SendMessageRequest{Text: text})
	if err != nil {
		logger.Warning("Error while send message to ticket", ticketID, err)
		return View{
			Text:     r.texts.Messages.MessageSendFailed,
			Keyboard: e.render(keyboard.TicketChatKeyboard(r.texts)),
		}
	}

	return View{
		Text:     r.texts.Messages.MessageSent,
		Keyboard: e.render(keyboard.TicketChatKeyboard(r.texts)),
	}
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"support-nav-bot/internal/gateway/requests"
	"support-nav-bot/internal/gateway/response"
)

func messagesUrl(ticketID int64) string {
	return API_CONVERSATIONS_URL + "/" + strconv.FormatInt(ticketID, 10) + "/messages"
}

// GetTickets - список бесед текущего пользователя
func (c *Client) GetTickets(ctx context.Context) (tickets []response.Ticket, err error) {
	r, err := c.Invoke(ctx, http.MethodGet, API_CONVERSATIONS_URL, nil, nil)
	if err != nil {
		return
	}

	if err = json.Unmarshal(r, &tickets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return
}

// CreateTicket - создать новую беседу
func (c *Client) CreateTicket(ctx context.Context, data requests.CreateTicketRequest) (ticketID int64, err error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}

	r, err := c.Invoke(ctx, http.MethodPost, API_CONVERSATIONS_URL, nil, jsonData)
	if err != nil {
		return
	}

	var content response.CreateTicketResponse
	if err = json.Unmarshal(r, &content); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if content.TicketID == nil {
		return 0, fmt.Errorf("%w: no ticket_id in response", ErrMalformedResponse)
	}

	return *content.TicketID, nil
}

// GetTicketMessages - сообщения беседы
func (c *Client) GetTicketMessages(ctx context.Context, ticketID int64) (messages []response.Message, err error) {
	r, err := c.Invoke(ctx, http.MethodGet, messagesUrl(ticketID), nil, nil)
	if err != nil {
		return
	}

	if err = json.Unmarshal(r, &messages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return
}

// SendMessage - отправить сообщение в беседу. Ответ со статусом отличным от success считается ошибкой.
func (c *Client) SendMessage(ctx context.Context, ticketID int64, data requests.SendMessageRequest) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	r, err := c.Invoke(ctx, http.MethodPost, messagesUrl(ticketID), nil, jsonData)
	if err != nil {
		return err
	}

	var status response.SendStatus
	if err := json.Unmarshal(r, &status); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !status.IsSuccess() {
		return fmt.Errorf("%w: send status %q", ErrMalformedResponse, status.Status)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"support-nav-bot/internal/gateway/requests"
	"support-nav-bot/internal/gateway/response"
)

// Login - авторизация пользователя по логину и паролю.
// Полученный токен нужно передавать в следующие запросы через WithToken.
func (c *Client) Login(ctx context.Context, username, password string, chatUserID int64) (content response.LoginResponse, err error) {
	jsonData, err := json.Marshal(requests.LoginRequest{
		Username:   username,
		Password:   password,
		TelegramID: chatUserID,
	})
	if err != nil {
		return
	}

	r, err := c.Invoke(ctx, http.MethodPost, API_LOGIN_URL, nil, jsonData)
	if err != nil {
		return
	}

	if err = json.Unmarshal(r, &content); err != nil {
		return content, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if content.Token == "" {
		return content, fmt.Errorf("%w: no token in login response", ErrMalformedResponse)
	}

	return
}

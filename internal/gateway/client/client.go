package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"support-nav-bot/internal/logger"
)

const (
	API_LOGIN_URL         = "/auth/login"
	API_BOT_ROOT_URL      = "/bot/content/root"
	API_BOT_NODE_URL      = "/bot/content/nodes"
	API_CONVERSATIONS_URL = "/messenger/conversations"
)

// ErrMalformedResponse - сервис ответил успешно, но без обязательных данных
var ErrMalformedResponse = errors.New("malformed response")

type (
	// Client - клиент сервиса контента и бесед
	Client struct {
		serverAddr string

		cl *http.Client
	}

	HttpError struct {
		Url     string
		Code    int
		Message string
	}

	tokenKey struct{}
)

func New(serverAddr string, timeout time.Duration) *Client {
	return &Client{
		serverAddr: strings.TrimRight(serverAddr, "/"),

		cl: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				IdleConnTimeout:     30 * time.Second,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 5,
			},
		},
	}
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("Http request failed for %s with code %d and message:\n%s", e.Url, e.Code, e.Message)
}

// WithToken - запросы с этим контекстом выполняются от имени пользователя с переданным токеном
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext - токен пользователя из контекста запроса
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func (c *Client) Invoke(ctx context.Context, method string, methodUrl string, urlParams url.Values, body []byte) (content []byte, err error) {
	reqUrl := c.serverAddr + "/" + strings.Trim(methodUrl, "/")
	if urlParams != nil {
		reqUrl += "?" + urlParams.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reqBody)
	if err != nil {
		logger.Warning("Error while create request for", reqUrl, "with method", method, ":", err)
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("---> request", req.Method, reqUrl)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	logger.Debug("<--- request", req.Method, reqUrl, "with body", bodyBytes)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HttpError{
			Url:     req.URL.String(),
			Code:    resp.StatusCode,
			Message: string(bodyBytes),
		}
	}

	return bodyBytes, nil
}

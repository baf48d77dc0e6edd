package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"support-nav-bot/internal/connect/requests"
	"support-nav-bot/internal/logger"

	"github.com/google/uuid"
)

type (
	// Client - клиент мессенджера для одной линии
	Client struct {
		lineID uuid.UUID

		serverAddr string
		login      string
		password   string

		specID *uuid.UUID

		cl *http.Client
	}

	HttpError struct {
		Url     string
		Code    int
		Message string
	}
)

func New(lineID uuid.UUID, serverAddr, login, password string, specID *uuid.UUID) *Client {
	return &Client{
		lineID: lineID,

		serverAddr: strings.TrimRight(serverAddr, "/"),
		login:      login,
		password:   password,

		specID: specID,

		cl: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				IdleConnTimeout:     30 * time.Second,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 5,
				DisableCompression:  true,
			},
		},
	}
}

func (c *Client) LineID() uuid.UUID {
	return c.lineID
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("Http request failed for %s with code %d and message:\n%s", e.Url, e.Code, e.Message)
}

// SetHook - подписаться на события линии
func (c *Client) SetHook(ctx context.Context, hookAddr string) error {
	jsonData, err := json.Marshal(requests.HookSetupRequest{
		ID:   c.lineID,
		Type: "bot",
		Url:  hookAddr,
	})
	if err != nil {
		return err
	}

	_, err = c.Invoke(ctx, http.MethodPost, "/hook/", nil, "application/json", jsonData)
	return err
}

// DeleteHook - отписаться от событий линии
func (c *Client) DeleteHook(ctx context.Context) error {
	_, err := c.Invoke(ctx, http.MethodDelete, "/hook/bot/"+c.lineID.String()+"/", nil, "application/json", nil)
	return err
}

func (c *Client) Invoke(ctx context.Context, method string, methodUrl string, urlParams url.Values, contentType string, body []byte) (content []byte, err error) {
	methodUrl = strings.Trim(methodUrl, "/")
	reqUrl := c.serverAddr + "/v1/" + methodUrl + "/"
	if urlParams != nil {
		reqUrl += "?" + urlParams.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, bytes.NewBuffer(body))
	if err != nil {
		logger.Warning("Error while create request for", reqUrl, "with method", method, ":", err)
		return nil, err
	}

	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("Content-Type", contentType)

	logger.Debug("---> request", req.Method, reqUrl)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	logger.Debug("<--- request", req.Method, reqUrl, "with body", bodyBytes)
	if err != nil {
		logger.Warning("Error while read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HttpError{
			Url:     req.URL.String(),
			Code:    resp.StatusCode,
			Message: string(bodyBytes),
		}
	}

	return bodyBytes, nil
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"support-nav-bot/internal/gateway/requests"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, setup func(r *gin.Engine)) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	setup(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", 5*time.Second)
}

func TestLogin(t *testing.T) {
	var got requests.LoginRequest
	cl := newTestServer(t, func(r *gin.Engine) {
		r.POST(API_LOGIN_URL, func(c *gin.Context) {
			assert.NoError(t, c.BindJSON(&got))
			c.JSON(http.StatusOK, gin.H{"token": "abc", "user": gin.H{"id": 1000, "username": "alice"}})
		})
	})

	resp, err := cl.Login(context.Background(), "alice", "secret", 42)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	require.NotNil(t, resp.User)
	assert.EqualValues(t, 1000, resp.User.ID)
	assert.Equal(t, requests.LoginRequest{Username: "alice", Password: "secret", TelegramID: 42}, got)
}

func TestLoginFailures(t *testing.T) {
	cl := newTestServer(t, func(r *gin.Engine) {
		r.POST(API_LOGIN_URL, func(c *gin.Context) {
			var req requests.LoginRequest
			_ = c.BindJSON(&req)
			switch req.Username {
			case "empty":
				c.JSON(http.StatusOK, gin.H{"user": nil})
			default:
				c.String(http.StatusUnauthorized, "bad credentials")
			}
		})
	})

	_, err := cl.Login(context.Background(), "bob", "x", 1)
	var httpErr *HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "bad credentials", httpErr.Message)

	_, err = cl.Login(context.Background(), "empty", "x", 1)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTokenHeader(t *testing.T) {
	var auth []string
	cl := newTestServer(t, func(r *gin.Engine) {
		r.GET(API_BOT_ROOT_URL, func(c *gin.Context) {
			auth = append(auth, c.GetHeader("Authorization"))
			c.JSON(http.StatusOK, gin.H{"id": 1, "text": "root", "buttons": []gin.H{{"text": "A", "next_node_id": 2}}})
		})
	})

	node, err := cl.GetRootNode(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, node.ID)
	require.Len(t, node.Buttons, 1)
	require.NotNil(t, node.Buttons[0].NextNodeID)
	assert.EqualValues(t, 2, *node.Buttons[0].NextNodeID)

	_, err = cl.GetRootNode(WithToken(context.Background(), "tok"))
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer tok"}, auth)
}

func TestWithToken(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", TokenFromContext(ctx))
	assert.Equal(t, ctx, WithToken(ctx, ""))
	assert.Equal(t, "tok", TokenFromContext(WithToken(ctx, "tok")))
}

func TestGetRootNodeNull(t *testing.T) {
	cl := newTestServer(t, func(r *gin.Engine) {
		r.GET(API_BOT_ROOT_URL, func(c *gin.Context) {
			c.String(http.StatusOK, "null")
		})
	})

	_, err := cl.GetRootNode(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetContentNode(t *testing.T) {
	cl := newTestServer(t, func(r *gin.Engine) {
		r.GET(API_BOT_NODE_URL+"/:id", func(c *gin.Context) {
			switch c.Param("id") {
			case "5":
				c.JSON(http.StatusOK, gin.H{"node": gin.H{"id": 5, "title": "Базовый", "text": "100 руб", "images": []string{"a.png"}}})
			case "6":
				c.JSON(http.StatusOK, gin.H{"node": nil})
			default:
				c.String(http.StatusNotFound, "not found")
			}
		})
	})

	node, err := cl.GetContentNode(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Базовый", node.Title)
	assert.Equal(t, []string{"a.png"}, node.Images)
	assert.False(t, node.HasChildren())

	_, err = cl.GetContentNode(context.Background(), 6)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = cl.GetContentNode(context.Background(), 7)
	var httpErr *HttpError
	assert.ErrorAs(t, err, &httpErr)
}

func TestTickets(t *testing.T) {
	var created requests.CreateTicketRequest
	cl := newTestServer(t, func(r *gin.Engine) {
		r.GET(API_CONVERSATIONS_URL, func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{{"id": 42, "conversation_name": "Billing"}, {"id": 43, "conversation_name": nil}})
		})
		r.POST(API_CONVERSATIONS_URL, func(c *gin.Context) {
			assert.NoError(t, c.BindJSON(&created))
			c.JSON(http.StatusCreated, gin.H{"ticket_id": 44})
		})
	})

	tickets, err := cl.GetTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Billing", *tickets[0].ConversationName)
	assert.Nil(t, tickets[1].ConversationName)

	id, err := cl.CreateTicket(context.Background(), requests.CreateTicketRequest{ClientID: 7, IsActive: true, ConversationName: "Billing issue"})
	require.NoError(t, err)
	assert.EqualValues(t, 44, id)
	assert.Equal(t, requests.CreateTicketRequest{ClientID: 7, IsActive: true, ConversationName: "Billing issue"}, created)
}

func TestCreateTicketWithoutID(t *testing.T) {
	cl := newTestServer(t, func(r *gin.Engine) {
		r.POST(API_CONVERSATIONS_URL, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})
	})

	_, err := cl.CreateTicket(context.Background(), requests.CreateTicketRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTicketMessages(t *testing.T) {
	var sent []requests.SendMessageRequest
	cl := newTestServer(t, func(r *gin.Engine) {
		r.GET(API_CONVERSATIONS_URL+"/:id/messages", func(c *gin.Context) {
			assert.Equal(t, "42", c.Param("id"))
			c.JSON(http.StatusOK, []gin.H{{"sender_id": 5, "created_at": "2024-05-01T10:00:00", "text": "hi"}})
		})
		r.POST(API_CONVERSATIONS_URL+"/:id/messages", func(c *gin.Context) {
			var req requests.SendMessageRequest
			assert.NoError(t, c.BindJSON(&req))
			sent = append(sent, req)
			if req.Text == "fail" {
				c.JSON(http.StatusOK, gin.H{"status": "error"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	})

	messages, err := cl.GetTicketMessages(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.EqualValues(t, 5, messages[0].SenderID)
	assert.Equal(t, "hi", messages[0].Text)

	require.NoError(t, cl.SendMessage(context.Background(), 42, requests.SendMessageRequest{Text: "thanks"}))

	err = cl.SendMessage(context.Background(), 42, requests.SendMessageRequest{Text: "fail"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Len(t, sent, 2)
}

func TestInvokeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(srv.Close)

	cl := New(srv.URL, 50*time.Millisecond)
	_, err := cl.GetTickets(context.Background())
	require.Error(t, err)

	var httpErr *HttpError
	assert.False(t, errors.As(err, &httpErr))
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"support-nav-bot/internal/gateway/response"
)

// GetRootNode - получить корневой узел контента
func (c *Client) GetRootNode(ctx context.Context) (*response.ContentNode, error) {
	r, err := c.Invoke(ctx, http.MethodGet, API_BOT_ROOT_URL, nil, nil)
	if err != nil {
		return nil, err
	}

	var node *response.ContentNode
	if err := json.Unmarshal(r, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: empty root node", ErrMalformedResponse)
	}

	return node, nil
}

// GetContentNode - получить узел контента по id
func (c *Client) GetContentNode(ctx context.Context, nodeID int64) (*response.ContentNode, error) {
	r, err := c.Invoke(ctx, http.MethodGet, API_BOT_NODE_URL+"/"+strconv.FormatInt(nodeID, 10), nil, nil)
	if err != nil {
		return nil, err
	}

	var content response.NodeResponse
	if err := json.Unmarshal(r, &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if content.Node == nil {
		return nil, fmt.Errorf("%w: no node %d in response", ErrMalformedResponse, nodeID)
	}

	return content.Node, nil
}

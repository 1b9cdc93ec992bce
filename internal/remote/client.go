// Package remote binds the storage backend's capability surface: login,
// full node listing, per-node delete and rename. Everything else the
// backend does is out of scope.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"cloudtidy/internal/models"
	"cloudtidy/internal/structures"
)

// ErrAuth is returned when the backend rejects the credentials.
var ErrAuth = errors.New("authentication rejected")

type Remote interface {
	Login(ctx context.Context, account, secret string) error
	ListNodes(ctx context.Context) (map[string]models.Node, error)
	Delete(ctx context.Context, nodeID string) error
	Rename(ctx context.Context, nodeID, newName string) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(conf *structures.Config) *Client {
	return &Client{
		baseURL: conf.Remote.BaseURL,
		httpClient: &http.Client{
			Timeout: conf.Remote.Timeout,
		},
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

type listResponse struct {
	Nodes map[string]models.Node `json:"nodes"`
}

func (c *Client) Login(ctx context.Context, account, secret string) error {
	body, _ := json.Marshal(map[string]string{
		"account": account,
		"secret":  secret,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/token", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: account %s", ErrAuth, account)
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed (%d): %s", resp.StatusCode, string(data))
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("parse login response: %w", err)
	}

	c.token = result.Token
	return nil
}

func (c *Client) ListNodes(ctx context.Context) (map[string]models.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/nodes", nil)
	if err != nil {
		return nil, err
	}
	c.applyAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list nodes request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list nodes failed (%d): %s", resp.StatusCode, string(data))
	}

	var result listResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parse node listing: %w", err)
	}
	return result.Nodes, nil
}

func (c *Client) Delete(ctx context.Context, nodeID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/nodes/"+nodeID, nil)
	if err != nil {
		return err
	}
	c.applyAuth(req)

	return c.doMutation(req, "delete", nodeID)
}

func (c *Client) Rename(ctx context.Context, nodeID, newName string) error {
	body, _ := json.Marshal(map[string]string{"name": newName})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/nodes/"+nodeID+"/rename", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyAuth(req)

	return c.doMutation(req, "rename", nodeID)
}

func (c *Client) applyAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) doMutation(req *http.Request, op, nodeID string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s request failed: %w", op, nodeID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s failed (%d): %s", op, nodeID, resp.StatusCode, string(data))
	}
	return nil
}

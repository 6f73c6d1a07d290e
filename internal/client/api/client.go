package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request unless WithHTTPClient overrides the client.
const DefaultTimeout = 15 * time.Second

// Error is a non-2xx answer from the food-service API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("food-service API answered %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// Client calls the food-service HTTP API.
type Client struct {
	baseURL    string
	session    SessionProvider
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(client *Client) {
		if l != nil {
			client.logger = l
		}
	}
}

func New(baseURL string, session SessionProvider, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", baseURL)
	}
	if session == nil {
		return nil, errors.New("session provider is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("api_client")
	return c, nil
}

// Login exchanges credentials for a token. It does not touch the session.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false, loginRequest{Email: email, Password: password}, &result)
	return result, err
}

func (c *Client) UniqueLocations(ctx context.Context, role staff.Role) ([]string, error) {
	var resp struct {
		UniqueLocations []string `json:"uniqueLocations"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/locations", true, roleRequest{Role: role.String()}, &resp); err != nil {
		return nil, err
	}
	return resp.UniqueLocations, nil
}

func (c *Client) UsersByLocation(ctx context.Context, role staff.Role, location string) ([]StaffMember, error) {
	var users []StaffMember
	req := locationRoleRequest{Role: role.String(), Location: location}
	if err := c.do(ctx, http.MethodPost, "/api/users/by-location", true, req, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FilterOrders returns the orders matching filter together with the server's summary of them.
func (c *Client) FilterOrders(ctx context.Context, filter Filter) (OrderList, error) {
	var list OrderList
	if err := c.do(ctx, http.MethodPost, "/api/orders/filter", true, filter.request(), &list); err != nil {
		return OrderList{}, err
	}
	return list, nil
}

// UpdateOrders applies one change to a batch of orders and returns the server's message.
func (c *Client) UpdateOrders(ctx context.Context, update OrderUpdate) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/api/orders/status", true, update.request(), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) PatientsWithMeal(ctx context.Context, session kernel.Session) ([]PatientMeal, error) {
	var resp struct {
		Data []PatientMeal `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/patients/with-meal", true, mealTimeRequest{MealTime: session.String()}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) PlaceOrder(ctx context.Context, mealOrder MealOrder) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", true, mealOrder.request(), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, authenticated bool, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if authenticated {
		token, tokenErr := c.session.Token(ctx)
		if tokenErr != nil {
			return tokenErr
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr errorResponse
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr != nil {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return &Error{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

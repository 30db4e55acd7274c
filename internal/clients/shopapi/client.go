// Package shopapi is the HTTP client for the upstream shop service. It is the
// only place that knows the shop API wire format; everything past this
// boundary works with domain types.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Client communicates with the shop API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new shop API client.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("component", "shopapi_client").Logger(),
	}
}

// orderPayload mirrors the shop API order shape. Dates travel as Unix
// milliseconds.
type orderPayload struct {
	ID               string             `json:"id"`
	Date             int64              `json:"date"`
	Amount           float64            `json:"amount"`
	Status           string             `json:"status"`
	Items            []orderItemPayload `json:"items"`
	Address          string             `json:"address"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentConfirmed bool               `json:"payment"`
}

type orderItemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type reviewPayload struct {
	ID      string `json:"id"`
	Date    int64  `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	User    string `json:"user,omitempty"`
	Product string `json:"product,omitempty"`
	Image   string `json:"image,omitempty"`
}

type listOrdersResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Orders  []orderPayload `json:"orders"`
}

type listReviewsResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Reviews []reviewPayload `json:"reviews"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FetchOrders returns the full current set of orders. The returned collection
// is authoritative and total; the shop API does not paginate this endpoint.
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var resp listOrdersResponse
	if err := c.get(ctx, "/api/order/list", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("shop API rejected order list request: %s", resp.Message)
	}

	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, p := range resp.Orders {
		items := make([]domain.OrderItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, domain.OrderItem{Name: it.Name, Quantity: it.Quantity, Size: it.Size})
		}
		orders = append(orders, domain.Order{
			ID:               p.ID,
			Date:             time.UnixMilli(p.Date),
			Amount:           p.Amount,
			Status:           domain.OrderStatus(p.Status),
			Items:            items,
			Address:          p.Address,
			PaymentMethod:    p.PaymentMethod,
			PaymentConfirmed: p.PaymentConfirmed,
		})
	}

	c.log.Debug().Int("count", len(orders)).Msg("Fetched orders from shop API")
	return orders, nil
}

// UpdateOrderStatus asks the shop API to set a new status for an order. The
// caller is expected to refetch afterwards; the shop side derives state from
// status changes, so a local patch would drift.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	payload := map[string]string{
		"orderId": orderID,
		"status":  string(status),
	}

	var resp statusResponse
	if err := c.post(ctx, "/api/order/status", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("shop API rejected status update for order %s: %s", orderID, resp.Message)
	}

	c.log.Info().Str("order_id", orderID).Str("status", string(status)).Msg("Order status updated")
	return nil
}

// FetchReviews returns the full current set of product reviews.
func (c *Client) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	var resp listReviewsResponse
	if err := c.get(ctx, "/api/review/list", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("shop API rejected review list request: %s", resp.Message)
	}

	reviews := make([]domain.Review, 0, len(resp.Reviews))
	for _, p := range resp.Reviews {
		reviews = append(reviews, domain.Review{
			ID:      p.ID,
			Date:    time.UnixMilli(p.Date),
			Rating:  p.Rating,
			Comment: p.Comment,
			User:    p.User,
			Product: p.Product,
			Image:   p.Image,
		})
	}

	c.log.Debug().Int("count", len(reviews)).Msg("Fetched reviews from shop API")
	return reviews, nil
}

// DeleteReview deletes a single review by id. Deletion has no server-side
// derived state, so callers remove the record from their snapshot directly
// instead of refetching.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	payload := map[string]string{"id": reviewID}

	var resp statusResponse
	if err := c.post(ctx, "/api/review/delete", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("shop API rejected delete for review %s: %s", reviewID, resp.Message)
	}

	c.log.Info().Str("review_id", reviewID).Msg("Review deleted")
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shop API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read shop API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("shop API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode shop API response: %w", err)
	}
	return nil
}

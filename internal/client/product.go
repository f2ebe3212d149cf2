package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Juanelc4734k/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

type ProductClient struct {
	client  *http.Client
	baseURL string
}

func NewProductClient(client *http.Client, baseURL string) *ProductClient {
	return &ProductClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *ProductClient) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.Product{}, entities.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return entities.Product{}, fmt.Errorf("unexpected status from product service: %d", resp.StatusCode)
	}

	var body struct {
		ID    int64           `json:"id"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
		Stock int             `json:"stock"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Product{}, fmt.Errorf("failed to decode product: %w", err)
	}

	return entities.Product{
		ID:    body.ID,
		Name:  body.Name,
		Price: body.Price,
		Stock: body.Stock,
	}, nil
}

func (c *ProductClient) UpdateStock(ctx context.Context, productID int64, stock int) error {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	payload, err := json.Marshal(map[string]int{"stock": stock})
	if err != nil {
		return fmt.Errorf("failed to marshal stock update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status from product service: %d", resp.StatusCode)
	}
	return nil
}

package delta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// GetProducts fetches the product catalog, optionally constrained by
// contract type and state. A success=false envelope is returned as an
// *APIError carrying the exchange's message.
func (c *Client) GetProducts(ctx context.Context, opts GetProductsOptions) ([]Product, error) {
	query := url.Values{}
	if opts.ContractTypes != "" {
		query.Set("contract_types", opts.ContractTypes)
	}
	if opts.States != "" {
		query.Set("states", opts.States)
	}

	body, err := c.doWithRetry(ctx, http.MethodGet, "/v2/products", query)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	var resp ProductsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal products: %w", err)
	}

	if !resp.Success {
		apiErr := &APIError{StatusCode: http.StatusOK, Message: "Unknown error", Body: body}
		if resp.Error != nil && resp.Error.Message != "" {
			apiErr.Code = resp.Error.Code
			apiErr.Message = resp.Error.Message
		}
		return nil, fmt.Errorf("get products: %w", apiErr)
	}

	c.logger.Debug("fetched products",
		"count", len(resp.Result),
		"contract_types", opts.ContractTypes,
	)

	return resp.Result, nil
}

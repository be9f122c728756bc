package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// InventoryFetcher retrieves a product's per-location inventory from
// the commerce backend.
type InventoryFetcher interface {
	// FetchProduct returns the product and its nested inventory levels.
	// Returns ErrProductNotFound when the backend has no such product
	// and ErrUpstream when the call itself fails.
	FetchProduct(ctx context.Context, productID string) (*Product, error)
}

const apiVersion = "2024-01"

// productInventoryQuery pulls every variant's inventory levels with the
// location display name and the "available" quantity bucket.
const productInventoryQuery = `query productInventory($id: ID!) {
  product(id: $id) {
    id
    title
    variants(first: 100) {
      edges {
        node {
          id
          inventoryItem {
            inventoryLevels(first: 50) {
              edges {
                node {
                  location { name }
                  quantities(names: ["available"]) { name quantity }
                }
              }
            }
          }
        }
      }
    }
  }
}`

// shopifyClient talks to the Shopify Admin GraphQL API with a static
// access token. One outbound call per FetchProduct; no retry.
type shopifyClient struct {
	storeDomain string
	accessToken string
	client      *http.Client
}

// NewShopifyClient creates an InventoryFetcher for the given store.
// storeDomain is the myshopify host, e.g. "acme.myshopify.com".
func NewShopifyClient(storeDomain, accessToken string) InventoryFetcher {
	return &shopifyClient{
		storeDomain: storeDomain,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type gqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type gqlResponse struct {
	Data struct {
		Product *gqlProduct `json:"product"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type gqlProduct struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Variants struct {
		Edges []struct {
			Node struct {
				ID            string `json:"id"`
				InventoryItem struct {
					InventoryLevels struct {
						Edges []struct {
							Node struct {
								Location struct {
									Name string `json:"name"`
								} `json:"location"`
								Quantities []struct {
									Name     string `json:"name"`
									Quantity int    `json:"quantity"`
								} `json:"quantities"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"inventoryLevels"`
				} `json:"inventoryItem"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (c *shopifyClient) FetchProduct(ctx context.Context, productID string) (*Product, error) {
	body, err := json.Marshal(gqlRequest{
		Query:     productInventoryQuery,
		Variables: map[string]string{"id": productGID(productID)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.storeDomain, apiVersion)
	if strings.Contains(c.storeDomain, "://") {
		// Test override with an explicit scheme.
		endpoint = fmt.Sprintf("%s/admin/api/%s/graphql.json", c.storeDomain, apiVersion)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: commerce backend returned status %d", ErrUpstream, resp.StatusCode)
	}

	var gql gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gql); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(gql.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, gql.Errors[0].Message)
	}
	if gql.Data.Product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	return mapProduct(gql.Data.Product), nil
}

// productGID widens a bare numeric product ID into a Shopify global ID.
func productGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return "gid://shopify/Product/" + id
}

func mapProduct(g *gqlProduct) *Product {
	p := &Product{ID: g.ID, Title: g.Title}
	for _, ve := range g.Variants.Edges {
		variant := Variant{ID: ve.Node.ID}
		for _, le := range ve.Node.InventoryItem.InventoryLevels.Edges {
			level := InventoryLevel{Location: le.Node.Location.Name}
			for _, q := range le.Node.Quantities {
				level.Quantities = append(level.Quantities, Quantity{Name: q.Name, Quantity: q.Quantity})
			}
			variant.Levels = append(variant.Levels, level)
		}
		p.Variants = append(p.Variants, variant)
	}
	return p
}

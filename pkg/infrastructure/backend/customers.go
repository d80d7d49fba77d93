package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vsinha/pos/pkg/domain/entities"
)

func (c *Client) ListCustomers(ctx context.Context) ([]*entities.Customer, error) {
	var customers []*entities.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer fetches a single customer. A 404 maps to repositories.ErrNotFound.
func (c *Client) GetCustomer(ctx context.Context, id entities.CustomerID) (*entities.Customer, error) {
	var customer entities.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(string(id))+"/", nil, &customer); err != nil {
		return nil, notFound(err, "customer", string(id))
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	var created entities.Customer
	if err := c.do(ctx, http.MethodPost, "/customers/", customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

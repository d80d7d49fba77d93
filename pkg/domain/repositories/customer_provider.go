package repositories

import (
	"context"

	"github.com/vsinha/pos/pkg/domain/entities"
)

// CustomerProvider provides access to registered customers
type CustomerProvider interface {
	ListCustomers(ctx context.Context) ([]*entities.Customer, error)
	GetCustomer(ctx context.Context, id entities.CustomerID) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, customer entities.Customer) (*entities.Customer, error)
}

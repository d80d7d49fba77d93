package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
)

// CustomerRepository provides in-memory customer storage. Emails are unique,
// compared case-insensitively.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []entities.Customer
	byID      map[entities.CustomerID]int
	byEmail   map[string]int
	nextID    int64
}

// NewCustomerRepository creates a new in-memory customer repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID:    make(map[entities.CustomerID]int),
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

// Verify interface compliance
var _ repositories.CustomerProvider = (*CustomerRepository)(nil)

// LoadCustomers loads customers into the repository
func (r *CustomerRepository) LoadCustomers(customers []*entities.Customer) error {
	for _, c := range customers {
		if _, err := r.CreateCustomer(context.Background(), *c); err != nil {
			return err
		}
	}
	return nil
}

// ListCustomers returns copies of all customers in creation order
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]*entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*entities.Customer, 0, len(r.customers))
	for i := range r.customers {
		c := r.customers[i]
		customers = append(customers, &c)
	}
	return customers, nil
}

// GetCustomer returns a copy of the customer with the given ID
func (r *CustomerRepository) GetCustomer(ctx context.Context, id entities.CustomerID) (*entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("customer %s: %w", id, repositories.ErrNotFound)
	}
	c := r.customers[index]
	return &c, nil
}

// CreateCustomer stores a customer, assigning the next numeric ID when none is given
func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}
	email := strings.ToLower(strings.TrimSpace(customer.Email))
	if email == "" {
		return nil, fmt.Errorf("customer email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return nil, fmt.Errorf("%w customer email: %s", repositories.ErrDuplicate, customer.Email)
	}

	if customer.ID == "" {
		customer.ID = entities.CustomerID(strconv.FormatInt(r.nextID, 10))
	}
	if _, exists := r.byID[customer.ID]; exists {
		return nil, fmt.Errorf("%w customer id: %s", repositories.ErrDuplicate, customer.ID)
	}
	if n, err := strconv.ParseInt(string(customer.ID), 10, 64); err == nil && n >= r.nextID {
		r.nextID = n + 1
	}

	r.byID[customer.ID] = len(r.customers)
	r.byEmail[email] = len(r.customers)
	r.customers = append(r.customers, customer)

	c := customer
	return &c, nil
}

func (r *CustomerRepository) name(id *entities.CustomerID) string {
	if id == nil {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index, exists := r.byID[*id]; exists {
		return r.customers[index].Name
	}
	return ""
}

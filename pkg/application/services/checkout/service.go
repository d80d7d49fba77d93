// Package checkout binds one cart to the catalog, customer and sales stores
// for a single register session.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/application/dto"
	"github.com/vsinha/pos/pkg/domain/cart"
	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/domain/repositories"
	"github.com/vsinha/pos/pkg/infrastructure/events"
)

// ErrPaymentMethodRequired is returned when a sale is completed without a tender
var ErrPaymentMethodRequired = errors.New("payment method is required")

// Dependencies are the collaborators a checkout session needs. Events and
// Logger are optional.
type Dependencies struct {
	Inventory    repositories.InventoryProvider
	Customers    repositories.CustomerProvider
	Transactions repositories.TransactionStore
	SavedCarts   repositories.SavedCartStore
	Events       events.EventStore
	Logger       *zap.Logger
}

// Service is one cashier's checkout session. It owns its cart exclusively;
// every operation holds the session lock, so a payload is never built from a
// cart that is being mutated.
type Service struct {
	deps      Dependencies
	logger    *zap.Logger
	sessionID string

	mu      sync.Mutex
	cart    *cart.Cart
	catalog map[entities.ItemID]entities.CatalogItem
	order   []entities.ItemID
}

// NewService starts a checkout session with an empty cart
func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.NewString()

	return &Service{
		deps:      deps,
		logger:    logger.With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
		cart:      cart.New(),
		catalog:   make(map[entities.ItemID]entities.CatalogItem),
	}
}

// SessionID identifies this session in logs and event streams
func (s *Service) SessionID() string {
	return s.sessionID
}

// LoadCatalog fetches the catalog and makes it the latest known stock figure
// for every item
func (s *Service) LoadCatalog(ctx context.Context) ([]entities.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCatalog(ctx); err != nil {
		return nil, err
	}
	return s.catalogItems(), nil
}

// Catalog returns the latest known catalog in provider order
func (s *Service) Catalog() []entities.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalogItems()
}

// AddItem adds quantity units of an item, merging into an existing line. The
// result is clamped to the latest known stock.
func (s *Service) AddItem(ctx context.Context, itemID entities.ItemID, quantity entities.Quantity) (clamped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.resolveItem(ctx, itemID)
	if err != nil {
		return false, err
	}

	clamped, err = s.cart.AddOrMerge(item, quantity)
	if err != nil {
		return false, err
	}

	line, _ := s.cart.Line(itemID)
	if clamped {
		s.logger.Info("line clamped to stock",
			zap.String("item_id", string(itemID)),
			zap.Int64("requested", int64(quantity)),
			zap.Int64("quantity", int64(line.Quantity)))
	}
	s.publish(events.CartLineAddedEvent, events.CartLineAdded{
		ItemID:    itemID,
		Requested: quantity,
		Quantity:  line.Quantity,
		Clamped:   clamped,
	})
	return clamped, nil
}

// SetQuantity replaces a line's quantity, re-validating against the latest
// known stock rather than the figure captured when the line was added. Zero or
// less removes the line.
func (s *Service) SetQuantity(ctx context.Context, itemID entities.ItemID, quantity entities.Quantity) (clamped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.Line(itemID)
	if !ok {
		return false, &cart.CartError{Code: cart.StatusInvalidItem, Message: fmt.Sprintf("item %s is not in the cart", itemID)}
	}

	stock := line.Stock
	if item, known := s.catalog[itemID]; known {
		stock = item.Stock
	}

	clamped = s.cart.SetLineQuantity(itemID, quantity, stock)
	after, stillThere := s.cart.Line(itemID)
	s.publish(events.CartLineQuantitySetEvent, events.CartLineQuantitySet{
		ItemID:    itemID,
		Requested: quantity,
		Quantity:  after.Quantity,
		Clamped:   clamped,
		Removed:   !stillThere,
	})
	return clamped, nil
}

// RemoveItem drops a line. Removing an absent item is a no-op.
func (s *Service) RemoveItem(itemID entities.ItemID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cart.Line(itemID); !ok {
		return
	}
	s.cart.RemoveLine(itemID)
	s.publish(events.CartLineRemovedEvent, events.CartLineRemoved{ItemID: itemID})
}

// SetDiscount sets the percentage discount, clamped to [0, 100]
func (s *Service) SetDiscount(percent decimal.Decimal) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetDiscountPercent(percent)
	stored := s.cart.DiscountPercent()
	s.publish(events.CartDiscountSetEvent, events.CartDiscountSet{Requested: percent, Percent: stored})
	return stored
}

// SelectCustomer attaches a registered customer to the sale. An empty id
// selects the walk-in customer.
func (s *Service) SelectCustomer(ctx context.Context, id entities.CustomerID) (*entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *entities.Customer
	if id != "" {
		found, err := s.deps.Customers.GetCustomer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("select customer %s: %w", id, err)
		}
		customer = found
	}

	s.cart.SetCustomer(entities.CustomerRef(id))
	s.publish(events.CartCustomerSetEvent, events.CartCustomerSet{Customer: s.cart.Customer()})
	return customer, nil
}

// Clear empties the cart, resetting discount and customer with it
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.publish(events.CartClearedEvent, events.CartCleared{Reason: "manual"})
}

// Summary renders the cart for display
func (s *Service) Summary() dto.CheckoutSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

// CompleteTransaction builds the sale payload and submits it. The cart is
// cleared only after the store acknowledges the sale; on failure it is left
// intact so the cashier can retry. The catalog is refreshed afterwards and a
// refresh failure does not fail the sale.
func (s *Service) CompleteTransaction(ctx context.Context, paymentMethod string) (*dto.CompletedTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrPaymentMethodRequired
	}

	payload, err := s.cart.BuildTransactionPayload(paymentMethod, string(entities.StatusCompleted))
	if err != nil {
		return nil, err
	}
	if !payload.PaymentMethod.IsKnown() {
		s.logger.Warn("unrecognised payment method", zap.String("payment_method", string(payload.PaymentMethod)))
	}

	record, err := s.deps.Transactions.CreateTransaction(ctx, payload)
	if err != nil {
		s.logger.Error("transaction submission failed",
			zap.Int("lines", len(payload.Items)),
			zap.String("total", payload.Total.String()),
			zap.Error(err))
		return nil, fmt.Errorf("submit transaction: %w", err)
	}

	s.cart.Clear()
	s.logger.Info("transaction completed",
		zap.String("transaction_number", record.TransactionNumber),
		zap.String("payment_method", string(payload.PaymentMethod)),
		zap.String("total", payload.Total.String()))
	s.publish(events.TransactionCompletedEvent, events.TransactionCompleted{Record: *record, Payload: payload})
	s.publish(events.CartClearedEvent, events.CartCleared{Reason: "transaction completed"})

	if err := s.deps.Inventory.Refresh(ctx); err != nil {
		s.logger.Warn("inventory refresh failed", zap.Error(err))
	} else if err := s.loadCatalog(ctx); err != nil {
		s.logger.Warn("catalog reload failed", zap.Error(err))
	}

	return &dto.CompletedTransaction{Payload: payload, Record: *record}, nil
}

// SaveCart parks the cart. The cart itself is kept.
func (s *Service) SaveCart(ctx context.Context) (*entities.SavedCartRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.cart.BuildSavedCartPayload()
	if err != nil {
		return nil, err
	}

	record, err := s.deps.SavedCarts.SaveCart(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.Info("cart saved", zap.String("cart_number", record.CartNumber), zap.Int("lines", len(payload.Items)))
	s.publish(events.CartSavedEvent, events.CartSaved{Record: *record})
	return record, nil
}

// ResumeSavedCart replaces the cart with a parked one. Lines are re-priced
// from a freshly loaded catalog and clamped to current stock; items that no
// longer exist or are out of stock are skipped and reported.
func (s *Service) ResumeSavedCart(ctx context.Context, id entities.RecordID) (*dto.ResumedCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.deps.SavedCarts.GetSavedCart(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resume cart %s: %w", id, err)
	}
	if err := s.deps.Inventory.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("refresh inventory: %w", err)
	}
	if err := s.loadCatalog(ctx); err != nil {
		return nil, err
	}

	s.cart.Clear()
	report := &dto.ResumedCart{SavedCartID: saved.ID}
	for _, line := range saved.Items {
		item, ok := s.catalog[line.Item]
		if !ok {
			report.Skipped = append(report.Skipped, line.Item)
			continue
		}
		clamped, err := s.cart.AddOrMerge(item, line.Quantity)
		if err != nil {
			s.logger.Info("skipping saved line", zap.String("item_id", string(line.Item)), zap.Error(err))
			report.Skipped = append(report.Skipped, line.Item)
			continue
		}
		report.Restored = append(report.Restored, line.Item)
		if clamped {
			report.Clamped = append(report.Clamped, line.Item)
		}
	}
	s.cart.SetCustomer(saved.Customer)

	s.publish(events.CartResumedEvent, events.CartResumed{
		SavedCartID: saved.ID,
		Skipped:     report.Skipped,
		Clamped:     report.Clamped,
	})
	return report, nil
}

// loadCatalog must be called with the session lock held
func (s *Service) loadCatalog(ctx context.Context) error {
	items, err := s.deps.Inventory.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	catalog := make(map[entities.ItemID]entities.CatalogItem, len(items))
	order := make([]entities.ItemID, 0, len(items))
	for _, item := range items {
		if _, dup := catalog[item.ID]; dup {
			continue
		}
		catalog[item.ID] = *item
		order = append(order, item.ID)
	}
	s.catalog = catalog
	s.order = order

	s.logger.Debug("catalog loaded", zap.Int("items", len(order)))
	return nil
}

func (s *Service) catalogItems() []entities.CatalogItem {
	items := make([]entities.CatalogItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.catalog[id])
	}
	return items
}

// resolveItem prefers the latest loaded catalog entry and falls back to the provider
func (s *Service) resolveItem(ctx context.Context, itemID entities.ItemID) (entities.CatalogItem, error) {
	if item, ok := s.catalog[itemID]; ok {
		return item, nil
	}

	item, err := s.deps.Inventory.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.CatalogItem{}, &cart.CartError{Code: cart.StatusInvalidItem, Message: fmt.Sprintf("unknown item %s", itemID)}
		}
		return entities.CatalogItem{}, err
	}
	s.catalog[item.ID] = *item
	s.order = append(s.order, item.ID)
	return *item, nil
}

func (s *Service) summary() dto.CheckoutSummary {
	lines := s.cart.Lines()
	summary := dto.CheckoutSummary{
		SessionID:       s.sessionID,
		Lines:           make([]dto.SummaryLine, 0, len(lines)),
		DiscountPercent: s.cart.DiscountPercent(),
		Customer:        s.cart.Customer(),
		Totals:          s.cart.ComputeTotals().Rounded(),
	}
	for _, line := range lines {
		summary.ItemCount += line.Quantity
		summary.Lines = append(summary.Lines, dto.SummaryLine{
			ItemID:         line.ItemID,
			Name:           line.Name,
			SKU:            line.SKU,
			Quantity:       line.Quantity,
			Stock:          line.Stock,
			UnitPrice:      entities.NewMoney(line.UnitPrice),
			LineTotal:      entities.NewMoney(line.Subtotal()),
			AtStockCeiling: line.AtStockCeiling(),
		})
	}
	return summary
}

func (s *Service) publish(eventType string, data interface{}) {
	if s.deps.Events == nil {
		return
	}
	if err := s.deps.Events.AppendEvent(s.sessionID, events.NewEvent(eventType, s.sessionID, data)); err != nil {
		s.logger.Warn("event append failed", zap.String("event_type", eventType), zap.Error(err))
	}
}

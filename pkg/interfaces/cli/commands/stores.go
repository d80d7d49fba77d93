package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/application/services/checkout"
	"github.com/vsinha/pos/pkg/domain/repositories"
	"github.com/vsinha/pos/pkg/infrastructure/backend"
	"github.com/vsinha/pos/pkg/infrastructure/config"
	"github.com/vsinha/pos/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/pos/pkg/infrastructure/repositories/memory"
)

// StoreFiles are the files the memory backend is seeded from
type StoreFiles struct {
	Catalog   string
	Customers string
}

// Stores is one backend's set of repositories
type Stores struct {
	Inventory    repositories.InventoryProvider
	Customers    repositories.CustomerProvider
	Transactions repositories.TransactionStore
	SavedCarts   repositories.SavedCartStore
}

func (s Stores) dependencies(logger *zap.Logger) checkout.Dependencies {
	return checkout.Dependencies{
		Inventory:    s.Inventory,
		Customers:    s.Customers,
		Transactions: s.Transactions,
		SavedCarts:   s.SavedCarts,
		Logger:       logger,
	}
}

// openStores connects the configured backend
func openStores(ctx context.Context, cfg config.Config, files StoreFiles, logger *zap.Logger) (Stores, error) {
	switch cfg.Backend {
	case config.BackendREST:
		return openREST(ctx, cfg, logger)
	case config.BackendMemory:
		return openMemory(cfg, files, logger)
	default:
		return Stores{}, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
}

func openREST(ctx context.Context, cfg config.Config, logger *zap.Logger) (Stores, error) {
	client := backend.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, memory.NewSessionStore(), logger)

	if cfg.Username != "" {
		account, err := client.Login(ctx, cfg.Username, cfg.Password)
		if err != nil {
			return Stores{}, fmt.Errorf("login as %s: %w", cfg.Username, err)
		}
		logger.Info("signed in", zap.String("username", account.Username), zap.String("role", account.Role))
	}

	return Stores{
		Inventory:    client,
		Customers:    client,
		Transactions: client,
		SavedCarts:   client,
	}, nil
}

func openMemory(cfg config.Config, files StoreFiles, logger *zap.Logger) (Stores, error) {
	if files.Catalog == "" {
		return Stores{}, fmt.Errorf("--catalog is required with the memory backend")
	}

	loader := csv.NewLoader()
	items, err := loader.LoadCatalog(files.Catalog)
	if err != nil {
		return Stores{}, fmt.Errorf("error loading catalog: %w", err)
	}

	inventory := memory.NewInventoryRepository(len(items))
	if err := inventory.LoadItems(items); err != nil {
		return Stores{}, fmt.Errorf("failed to load catalog into repository: %w", err)
	}

	customers := memory.NewCustomerRepository()
	if files.Customers != "" {
		list, err := loader.LoadCustomers(files.Customers)
		if err != nil {
			return Stores{}, fmt.Errorf("error loading customers: %w", err)
		}
		if err := customers.LoadCustomers(list); err != nil {
			return Stores{}, fmt.Errorf("failed to load customers into repository: %w", err)
		}
	}

	logger.Debug("memory backend loaded",
		zap.String("catalog", files.Catalog),
		zap.Int("items", len(items)),
		zap.String("customers", files.Customers))

	account := cfg.Username
	if account == "" {
		account = "cashier"
	}
	return Stores{
		Inventory:    inventory,
		Customers:    customers,
		Transactions: memory.NewTransactionRepository(inventory, customers, account, time.Now),
		SavedCarts:   memory.NewSavedCartRepository(inventory, customers, time.Now),
	}, nil
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/application/services/checkout"
	"github.com/vsinha/pos/pkg/domain/entities"
	"github.com/vsinha/pos/pkg/infrastructure/events"
	"github.com/vsinha/pos/pkg/interfaces/cli/output"
)

// CheckoutConfig holds configuration for a scripted checkout run
type CheckoutConfig struct {
	Files      StoreFiles
	ScriptFile string
	Format     string
	Submit     bool
	Payment    string
}

// CheckoutCommand replays a checkout script against a fresh session
type CheckoutCommand struct {
	config CheckoutConfig
	stores Stores
	logger *zap.Logger
	out    io.Writer
}

func newCheckoutCommand(opts *globalOptions) *cobra.Command {
	var cfg CheckoutConfig

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Replay a checkout script and print the cart",
		Long: `checkout builds a cart from a YAML script of cashier actions, prints
its summary and, with --submit, completes the sale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.ValidateFormat(cfg.Format); err != nil {
				return err
			}
			appCfg, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			s, err := openStores(ctx, appCfg, cfg.Files, logger)
			if err != nil {
				return err
			}
			return NewCheckoutCommand(cfg, s, logger, cmd.OutOrStdout()).Execute(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Files.Catalog, "catalog", "", "Catalog CSV or XLSX file (memory backend)")
	flags.StringVar(&cfg.Files.Customers, "customers", "", "Customers CSV or XLSX file (memory backend)")
	flags.StringVar(&cfg.ScriptFile, "script", "", "YAML checkout script")
	flags.StringVar(&cfg.Format, "format", output.FormatText, "Output format: text, json")
	flags.BoolVar(&cfg.Submit, "submit", false, "Complete the sale after the script runs")
	flags.StringVar(&cfg.Payment, "payment", "", "Payment method, overriding the script's")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

// NewCheckoutCommand creates a checkout run over the given stores
func NewCheckoutCommand(config CheckoutConfig, s Stores, logger *zap.Logger, out io.Writer) *CheckoutCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutCommand{
		config: config,
		stores: s,
		logger: logger,
		out:    out,
	}
}

// Execute runs the script
func (c *CheckoutCommand) Execute(ctx context.Context) error {
	script, err := LoadScript(c.config.ScriptFile)
	if err != nil {
		return err
	}

	eventStore := events.NewInMemoryEventStore(c.logger)
	if err := eventStore.Subscribe([]string{events.AllEvents}, events.HandlerFunc(func(e events.Event) error {
		c.logger.Debug("checkout event",
			zap.String("event_type", e.Type()),
			zap.String("stream_id", e.StreamID()),
			zap.Int("version", e.Version()))
		return nil
	})); err != nil {
		return fmt.Errorf("subscribe to checkout events: %w", err)
	}
	defer eventStore.Wait()

	deps := c.stores.dependencies(c.logger)
	deps.Events = eventStore
	session := checkout.NewService(deps)

	items, err := session.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	c.logger.Info("checkout session started",
		zap.String("session_id", session.SessionID()),
		zap.Int("catalog_items", len(items)),
		zap.Int("steps", len(script.Steps)))

	var lastSaved entities.RecordID
	for i, step := range script.Steps {
		if err := c.runStep(ctx, session, step, &lastSaved); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}

	if err := output.Summary(c.out, c.config.Format, session.Summary()); err != nil {
		return err
	}

	if !c.config.Submit {
		return nil
	}

	payment := script.Payment
	if c.config.Payment != "" {
		payment = c.config.Payment
	}
	completed, err := session.CompleteTransaction(ctx, payment)
	if err != nil {
		return err
	}
	return output.Transaction(c.out, c.config.Format, *completed)
}

func (c *CheckoutCommand) runStep(ctx context.Context, session *checkout.Service, step Step, lastSaved *entities.RecordID) error {
	switch step.Action {
	case actionAdd:
		clamped, err := session.AddItem(ctx, entities.ItemID(step.Item), entities.Quantity(step.Quantity))
		if err != nil {
			return err
		}
		c.noteClamp(step, clamped)
	case actionSet:
		clamped, err := session.SetQuantity(ctx, entities.ItemID(step.Item), entities.Quantity(step.Quantity))
		if err != nil {
			return err
		}
		c.noteClamp(step, clamped)
	case actionRemove:
		session.RemoveItem(entities.ItemID(step.Item))
	case actionDiscount:
		percent, err := decimal.NewFromString(string(step.Percent))
		if err != nil {
			return fmt.Errorf("invalid percent %q: %w", step.Percent, err)
		}
		stored := session.SetDiscount(percent)
		if !stored.Equal(percent) {
			c.logger.Info("discount clamped", zap.String("requested", percent.String()), zap.String("stored", stored.String()))
		}
	case actionCustomer:
		if _, err := session.SelectCustomer(ctx, entities.CustomerID(step.Customer)); err != nil {
			return err
		}
	case actionClear:
		session.Clear()
	case actionSave:
		record, err := session.SaveCart(ctx)
		if err != nil {
			return err
		}
		*lastSaved = record.ID
		return output.SavedCart(c.out, c.config.Format, *record)
	case actionResume:
		id := entities.RecordID(step.Cart)
		if step.Cart == lastSavedCart {
			if *lastSaved == "" {
				return errors.New("no cart has been saved yet")
			}
			id = *lastSaved
		}
		resumed, err := session.ResumeSavedCart(ctx, id)
		if err != nil {
			return err
		}
		return output.Resumed(c.out, c.config.Format, *resumed)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}

func (c *CheckoutCommand) noteClamp(step Step, clamped bool) {
	if clamped {
		c.logger.Info("quantity clamped to stock",
			zap.String("item_id", string(step.Item)),
			zap.Int64("requested", step.Quantity))
	}
}

package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/cart"
	"github.com/vsinha/pos/pkg/domain/entities"
)

type cartTestContext struct {
	cart    *cart.Cart
	catalog map[entities.ItemID]entities.CatalogItem
	clamped bool
	payload entities.TransactionPayload
	err     error
}

func (c *cartTestContext) reset() {
	c.cart = cart.New()
	c.catalog = make(map[entities.ItemID]entities.CatalogItem)
	c.clamped = false
	c.payload = entities.TransactionPayload{}
	c.err = nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = cart.New()
	return nil
}

func (c *cartTestContext) aCatalogItem(id, price string, stock int, taxRate string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	r, err := decimal.NewFromString(taxRate)
	if err != nil {
		return err
	}
	item, err := entities.NewCatalogItem(entities.ItemID(id), "Item "+id, "SKU-"+id, p, entities.Quantity(stock), r, "EA", "")
	if err != nil {
		return err
	}
	c.catalog[item.ID] = *item
	return nil
}

func (c *cartTestContext) iAddOf(quantity int, id string) error {
	item, ok := c.catalog[entities.ItemID(id)]
	if !ok {
		return fmt.Errorf("unknown catalog item %q", id)
	}
	clamped, err := c.cart.AddOrMerge(item, entities.Quantity(quantity))
	if err != nil {
		return err
	}
	c.clamped = clamped
	return nil
}

func (c *cartTestContext) iSetTheQuantityOf(id string, quantity, stock int) error {
	c.clamped = c.cart.SetLineQuantity(entities.ItemID(id), entities.Quantity(quantity), entities.Quantity(stock))
	return nil
}

func (c *cartTestContext) iSetTheDiscount(value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	c.cart.SetDiscountPercent(d)
	return nil
}

func (c *cartTestContext) iSelectCustomer(id string) error {
	c.cart.SetCustomer(entities.CustomerRef(entities.CustomerID(id)))
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.cart.Clear()
	return nil
}

func (c *cartTestContext) iBuildATransactionPayload(method string) error {
	c.payload, c.err = c.cart.BuildTransactionPayload(method, "COMPLETED")
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d lines, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) lineHasQuantity(id string, quantity int) error {
	line, ok := c.cart.Line(entities.ItemID(id))
	if !ok {
		return fmt.Errorf("no line for %q", id)
	}
	if line.Quantity != entities.Quantity(quantity) {
		return fmt.Errorf("expected quantity %d, got %d", quantity, line.Quantity)
	}
	return nil
}

func (c *cartTestContext) theLastOperationWasClamped() error {
	if !c.clamped {
		return errors.New("expected the last operation to be clamped")
	}
	return nil
}

func (c *cartTestContext) theStoredDiscountIs(value string) error {
	expected, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	if !c.cart.DiscountPercent().Equal(expected) {
		return fmt.Errorf("expected discount %s, got %s", expected, c.cart.DiscountPercent())
	}
	return nil
}

func (c *cartTestContext) noCustomerIsSelected() error {
	if c.cart.Customer() != nil {
		return fmt.Errorf("expected walk-in customer, got %s", *c.cart.Customer())
	}
	return nil
}

func (c *cartTestContext) payloadField(name string, get func(entities.TransactionPayload) entities.Money) func(string) error {
	return func(expected string) error {
		if c.err != nil {
			return fmt.Errorf("payload build failed: %w", c.err)
		}
		if got := get(c.payload).String(); got != expected {
			return fmt.Errorf("expected %s %s, got %s", name, expected, got)
		}
		return nil
	}
}

func (c *cartTestContext) thePayloadPaymentMethodIs(method string) error {
	if string(c.payload.PaymentMethod) != method {
		return fmt.Errorf("expected payment method %q, got %q", method, c.payload.PaymentMethod)
	}
	return nil
}

func (c *cartTestContext) theBuildFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the build to fail")
	}
	if !errors.Is(c.err, cart.ErrEmptyCart) || c.err.Error() != message {
		return fmt.Errorf("expected %q, got %v", message, c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a catalog item "([^"]*)" priced (\S+) with stock (\d+) and tax rate (\S+)$`, tc.aCatalogItem)

	// When steps
	ctx.Step(`^I add (\d+) of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+) with stock (\d+)$`, tc.iSetTheQuantityOf)
	ctx.Step(`^I set the discount to (-?[\d.]+) percent$`, tc.iSetTheDiscount)
	ctx.Step(`^I select customer "([^"]*)"$`, tc.iSelectCustomer)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^I build a transaction payload paid by "([^"]*)"$`, tc.iBuildATransactionPayload)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^line "([^"]*)" has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the last operation was clamped$`, tc.theLastOperationWasClamped)
	ctx.Step(`^the stored discount is (-?[\d.]+) percent$`, tc.theStoredDiscountIs)
	ctx.Step(`^no customer is selected$`, tc.noCustomerIsSelected)
	ctx.Step(`^the payload subtotal is (\S+)$`, tc.payloadField("subtotal", func(p entities.TransactionPayload) entities.Money { return p.Subtotal }))
	ctx.Step(`^the payload tax is (\S+)$`, tc.payloadField("tax", func(p entities.TransactionPayload) entities.Money { return p.Tax }))
	ctx.Step(`^the payload discount is (\S+)$`, tc.payloadField("discount", func(p entities.TransactionPayload) entities.Money { return p.Discount }))
	ctx.Step(`^the payload total is (\S+)$`, tc.payloadField("total", func(p entities.TransactionPayload) entities.Money { return p.Total }))
	ctx.Step(`^the payload payment method is "([^"]*)"$`, tc.thePayloadPaymentMethodIs)
	ctx.Step(`^the build fails with "([^"]*)"$`, tc.theBuildFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

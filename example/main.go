package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/pos"
)

func main() {
	ctx := context.Background()

	register, err := pos.NewInMemoryRegister(ctx, cornerShop(), []pos.Customer{
		{ID: "7", Name: "Thandi", Email: "thandi@example.com", Phone: "0821234567"},
	}, pos.RegisterConfig{AccountName: "till-1"})
	if err != nil {
		fmt.Printf("❌ Register setup failed: %v\n", err)
		return
	}

	fmt.Println("🛒 Ringing up a sale...")
	for _, scan := range []struct {
		id  pos.ItemID
		qty pos.Quantity
	}{
		{"1", 2},
		{"2", 1},
		{"3", 6}, // only 3 on the shelf
	} {
		clamped, err := register.AddItem(ctx, scan.id, scan.qty)
		if err != nil {
			fmt.Printf("  ⚠️  %s: %v\n", scan.id, err)
			continue
		}
		if clamped {
			fmt.Printf("  ⚠️  %s: limited to stock on hand\n", scan.id)
		}
	}

	register.SetDiscount(decimal.NewFromInt(10))
	if _, err := register.SelectCustomer(ctx, "7"); err != nil {
		fmt.Printf("❌ Customer lookup failed: %v\n", err)
		return
	}

	summary := register.Summary()
	fmt.Println()
	fmt.Println("📋 Cart:")
	for _, line := range summary.Lines {
		fmt.Printf("  %-8s x%-3d @ %6s = %7s\n", line.Name, line.Quantity, line.UnitPrice, line.LineTotal)
	}
	fmt.Printf("  Subtotal %s | Tax %s | Discount %s | Total %s\n",
		summary.Totals.Subtotal, summary.Totals.Tax, summary.Totals.DiscountAmount, summary.Totals.Total)
	fmt.Println()

	receipt, err := register.CompleteTransaction(ctx, "mpesa")
	if err != nil {
		fmt.Printf("❌ Sale failed: %v\n", err)
		return
	}
	fmt.Printf("✅ %s paid by %s for %s\n",
		receipt.Record.TransactionNumber, receipt.Payload.PaymentMethod, receipt.Payload.Total)

	eggs, err := register.Stock(ctx, "3")
	if err == nil {
		fmt.Printf("📦 Eggs left on the shelf: %d\n", eggs)
	}
}

func cornerShop() []pos.Item {
	vat := decimal.RequireFromString("0.15")
	return []pos.Item{
		{ID: "1", Name: "Bread", SKU: "BRD-700", Price: decimal.RequireFromString("5.99"), Stock: 50, TaxRate: vat, Unit: "EA", Category: "Bakery"},
		{ID: "2", Name: "Milk", SKU: "MLK-2L", Price: decimal.RequireFromString("12.50"), Stock: 50, Unit: "EA", Category: "Dairy"},
		{ID: "3", Name: "Eggs", SKU: "EGG-6", Price: decimal.RequireFromString("2.00"), Stock: 3, TaxRate: vat, Unit: "EA", Category: "Dairy"},
	}
}

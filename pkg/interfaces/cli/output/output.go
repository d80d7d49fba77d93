package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vsinha/pos/pkg/application/dto"
	"github.com/vsinha/pos/pkg/domain/entities"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidateFormat reports whether format is supported
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Summary writes the cart summary
func Summary(w io.Writer, format string, summary dto.CheckoutSummary) error {
	switch format {
	case FormatText:
		return summaryText(w, summary)
	case FormatJSON:
		return writeJSON(w, summary)
	default:
		return ValidateFormat(format)
	}
}

// Transaction writes an acknowledged sale
func Transaction(w io.Writer, format string, completed dto.CompletedTransaction) error {
	switch format {
	case FormatText:
		return transactionText(w, completed)
	case FormatJSON:
		return writeJSON(w, completed)
	default:
		return ValidateFormat(format)
	}
}

// SavedCart writes an acknowledged parked cart
func SavedCart(w io.Writer, format string, record entities.SavedCartRecord) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "🅿️  Cart saved: %s (%d lines, total %s)\n", record.CartNumber, len(record.Items), record.Total)
		return err
	case FormatJSON:
		return writeJSON(w, record)
	default:
		return ValidateFormat(format)
	}
}

// Resumed writes how a parked cart was restored
func Resumed(w io.Writer, format string, resumed dto.ResumedCart) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "↩️  Resumed cart %s: %d restored, %d clamped, %d skipped %v\n",
			resumed.SavedCartID, len(resumed.Restored), len(resumed.Clamped), len(resumed.Skipped), resumed.Skipped)
		return err
	case FormatJSON:
		return writeJSON(w, resumed)
	default:
		return ValidateFormat(format)
	}
}

// TransactionList writes recorded sales
func TransactionList(w io.Writer, format string, records []*entities.TransactionRecord) error {
	switch format {
	case FormatText:
		p := &printer{w: w}
		p.printf("%-28s %-20s %-10s %-10s %-10s\n", "Transaction", "Date", "Payment", "Status", "Total")
		for _, r := range records {
			p.printf("%-28s %-20s %-10s %-10s %10s\n", r.TransactionNumber, r.Date.Format("2006-01-02 15:04:05"), r.PaymentMethod, r.Status, r.Total)
		}
		p.printf("\n%d transactions\n", len(records))
		return p.err
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return ValidateFormat(format)
	}
}

// SavedCartList writes parked carts
func SavedCartList(w io.Writer, format string, records []*entities.SavedCartRecord) error {
	switch format {
	case FormatText:
		p := &printer{w: w}
		p.printf("%-8s %-28s %-20s %-20s %10s\n", "ID", "Cart", "Saved", "Customer", "Total")
		for _, r := range records {
			customer := r.CustomerName
			if customer == "" {
				customer = "walk-in"
			}
			p.printf("%-8s %-28s %-20s %-20s %10s\n", r.ID, r.CartNumber, r.SavedDate.Format("2006-01-02 15:04:05"), truncate(customer, 20), r.Total)
		}
		p.printf("\n%d saved carts\n", len(records))
		return p.err
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return ValidateFormat(format)
	}
}

func summaryText(w io.Writer, s dto.CheckoutSummary) error {
	customer := "walk-in"
	if s.Customer != nil {
		customer = string(*s.Customer)
	}

	p := &printer{w: w}
	p.printf("🛒 Cart Summary\n")
	p.printf("===============\n\n")
	p.printf("Customer: %s\n", customer)
	p.printf("Items:    %d\n\n", s.ItemCount)

	if len(s.Lines) > 0 {
		p.printf("%-8s %-24s %-6s %-10s %-10s\n", "Item", "Name", "Qty", "Price", "Line")
		p.printf("%-8s %-24s %-6s %-10s %-10s\n", "--------", "------------------------", "------", "----------", "----------")
		for _, line := range s.Lines {
			marker := ""
			if line.AtStockCeiling {
				marker = " (max)"
			}
			p.printf("%-8s %-24s %-6d %-10s %-10s%s\n", line.ItemID, truncate(line.Name, 24), line.Quantity, line.UnitPrice, line.LineTotal, marker)
		}
		p.printf("\n")
	}

	p.printf("Subtotal: %10s\n", s.Totals.Subtotal)
	p.printf("Tax:      %10s\n", s.Totals.Tax)
	p.printf("Discount: %10s (%s%%)\n", s.Totals.DiscountAmount, s.DiscountPercent)
	p.printf("Total:    %10s\n", s.Totals.Total)
	return p.err
}

func transactionText(w io.Writer, c dto.CompletedTransaction) error {
	p := &printer{w: w}
	p.printf("✅ Transaction %s completed\n", c.Record.TransactionNumber)
	p.printf("Payment:  %s\n", c.Payload.PaymentMethod)
	p.printf("Status:   %s\n", c.Record.Status)
	p.printf("Total:    %s\n", c.Payload.Total)
	return p.err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// printer keeps the first write error so text renderers can print freely
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

package pos

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/shashiranjanraj/tokri/app/models"
	"github.com/shashiranjanraj/tokri/config"
	"github.com/shashiranjanraj/tokri/pkg/collection"
	"github.com/shashiranjanraj/tokri/pkg/money"
)

var (
	headerColor = color.New(color.FgBlue)
	cartColor   = color.New(color.FgMagenta)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

func (t *Terminal) successf(format string, args ...any) {
	okColor.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) errorf(format string, args ...any) {
	errColor.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) renderMenu() {
	headerColor.Fprintln(t.out, "\n========== TOKRI ==========")
	fmt.Fprintln(t.out, "1. View Products")
	fmt.Fprintln(t.out, "2. Add to Cart")
	fmt.Fprintln(t.out, "3. View Cart")
	fmt.Fprintln(t.out, "4. Update Cart Quantity")
	fmt.Fprintln(t.out, "5. Remove from Cart")
	fmt.Fprintln(t.out, "6. Checkout")
	fmt.Fprintln(t.out, "7. Exit")
}

func (t *Terminal) renderProducts() {
	headerColor.Fprintln(t.out, "\n===== PRODUCT LIST =====")
	products := t.session.Products()
	if len(products) == 0 {
		t.errorf("No products available.")
		return
	}

	w := tabwriter.NewWriter(t.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "No.\tProduct\tPrice\tStock")
	for i, p := range products {
		stock := okColor.Sprint(p.Stock)
		if !p.InStock() {
			stock = errColor.Sprint(p.Stock)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, displayName(p.Name), money.Format(p.Price), stock)
	}
	w.Flush()
}

func (t *Terminal) renderCart() {
	cartColor.Fprintln(t.out, "\n===== YOUR CART =====")
	lines := t.session.CartLines()
	if len(lines) == 0 {
		t.errorf("Cart is empty.")
		return
	}

	w := tabwriter.NewWriter(t.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "No.\tProduct\tPrice\tQty\tSubtotal")
	for i, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			i+1, displayName(l.Name), money.Format(l.Price), l.Qty, money.Format(l.Subtotal()))
	}
	w.Flush()
	okColor.Fprintf(t.out, "TOTAL: %s\n", money.Format(t.session.CartTotal()))
}

func (t *Terminal) renderReceipt(r *models.Receipt) {
	headerColor.Fprintln(t.out, "\n===== RECEIPT =====")
	for _, l := range r.Lines {
		fmt.Fprintf(t.out, "%s x%d = %s\n", l.Name, l.Qty, money.Format(l.LineTotal))
	}
	fmt.Fprintln(t.out, strings.Repeat("-", 30))
	warnColor.Fprintf(t.out, "TOTAL   : %s\n", money.Format(r.Total))
	fmt.Fprintf(t.out, "PAYMENT : %s\n", money.Format(r.Payment))
	okColor.Fprintf(t.out, "CHANGE  : %s\n", money.Format(r.Change))
	okColor.Fprintln(t.out, "Thank you. Please come again!")
}

// renderSummary prints what the journal gathered over the session.
func (t *Terminal) renderSummary() {
	if t.journal.Sales() == 0 {
		return
	}
	inStock := collection.Filter(t.session.Products(), models.Product.InStock)
	headerColor.Fprintln(t.out, "\n===== SESSION SUMMARY =====")
	fmt.Fprintf(t.out, "Sales      : %d\n", t.journal.Sales())
	fmt.Fprintf(t.out, "Items sold : %d\n", t.journal.ItemsSold())
	fmt.Fprintf(t.out, "Revenue    : %s\n", money.Format(t.journal.Revenue()))
	fmt.Fprintf(t.out, "Products still in stock: %d\n", len(inStock))
}

// displayName truncates a product name to the configured column width.
// Render-time only — stored names stay intact.
func displayName(name string) string {
	width := config.DisplayNameWidth()
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width])
}

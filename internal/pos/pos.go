// Package pos implements the terminal front-end: product setup, the menu
// loop, prompting and rendering. All engine calls go through
// services.Session; this package owns every piece of I/O the engine is
// forbidden from doing, including mapping engine rejections to messages.
package pos

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/app/models"
	"github.com/shashiranjanraj/tokri/app/repositories"
	"github.com/shashiranjanraj/tokri/app/services"
	"github.com/shashiranjanraj/tokri/pkg/collection"
	"github.com/shashiranjanraj/tokri/pkg/event"
	"github.com/shashiranjanraj/tokri/pkg/logger"
	"github.com/shashiranjanraj/tokri/pkg/prompt"
)

// Terminal drives one operator-facing checkout session over a reader/writer
// pair. Tests and the demo command feed it scripted input.
type Terminal struct {
	prompt     *prompt.Prompter
	out        io.Writer
	useDefault bool

	session *services.Session
	journal *Journal
	log     *slog.Logger
}

// New returns a Terminal reading operator input from in and rendering to
// out. With useDefault set the product setup phase is skipped and the sample
// catalogue is used.
func New(in io.Reader, out io.Writer, useDefault bool) *Terminal {
	return &Terminal{
		prompt:     prompt.New(in, out),
		out:        out,
		useDefault: useDefault,
	}
}

// Run executes the full session: catalogue setup, then the menu loop until
// the operator exits or input runs out.
func (t *Terminal) Run() error {
	catalog := t.setupCatalog()
	t.session = services.NewSession(catalog)
	t.log = logger.WithSession(t.session.ID())
	t.journal = NewJournal()
	defer t.journal.Close()

	t.log.Info("session started", "products", catalog.Len())

	for {
		t.renderMenu()
		choice, ok := t.prompt.Line("Choose (1-7): ")
		if !ok {
			// Input exhausted (scripted sessions, closed stdin).
			t.renderSummary()
			return nil
		}

		switch choice {
		case "1":
			t.renderProducts()
		case "2":
			t.addToCart()
		case "3":
			t.renderCart()
		case "4":
			t.updateQuantity()
		case "5":
			t.removeFromCart()
		case "6":
			t.checkout()
		case "7":
			t.renderSummary()
			warnColor.Fprintln(t.out, "Exiting Tokri... Bye!")
			t.log.Info("session ended", "sales", t.journal.Sales())
			return nil
		default:
			t.errorf("Invalid choice. Please enter 1-7.")
		}
	}
}

// setupCatalog runs the interactive product setup phase. An empty result
// falls back to the sample catalogue so the session never starts unsellable.
func (t *Terminal) setupCatalog() *repositories.CatalogRepository {
	if t.useDefault {
		warnColor.Fprintln(t.out, "Using the default sample catalogue.")
		return repositories.Default()
	}

	headerColor.Fprintln(t.out, "\n=== Product Setup ===")
	fmt.Fprintln(t.out, "Enter product details. Press Enter on product name to finish.")
	fmt.Fprintln(t.out)

	catalog := repositories.NewCatalogRepository()
	for {
		name, ok := t.prompt.Line("Enter product name (Enter to finish): ")
		if !ok || name == "" {
			break
		}

		price, ok := t.prompt.Decimal("Enter product price (> 0): ", decimal.New(1, -2))
		if !ok {
			t.errorf("Invalid price. Please try again.")
			continue
		}

		stock, ok := t.prompt.Int("Enter product stock (>= 0): ", 0, math.MaxInt)
		if !ok {
			t.errorf("Invalid stock. Please try again.")
			continue
		}

		if _, err := catalog.Create(name, price, stock); err != nil {
			t.errorf("%v", err)
			continue
		}
		t.successf("Product added.")
	}

	if catalog.Empty() {
		warnColor.Fprintln(t.out, "No products were added. A default sample set will be used.")
		return repositories.Default()
	}
	return catalog
}

func (t *Terminal) addToCart() {
	products := t.session.Products()
	if len(products) == 0 {
		t.errorf("No products to add.")
		return
	}

	t.renderProducts()
	index, ok := t.prompt.Int("Enter product number to add: ", 1, len(products))
	if !ok {
		t.errorf("Invalid product number.")
		return
	}

	p := products[index-1]
	if !p.InStock() {
		t.errorf("Out of stock.")
		return
	}

	qty, ok := t.prompt.Int(fmt.Sprintf("Enter quantity (1-%d): ", p.Stock), 1, p.Stock)
	if !ok {
		t.errorf("Invalid quantity.")
		return
	}

	line, err := t.session.AddToCart(index, qty)
	if err != nil {
		t.renderError(err)
		return
	}
	t.successf("Added to cart.")
	t.log.Info("cart add", "product_id", line.ProductID, "qty", qty, "line_qty", line.Qty)
}

func (t *Terminal) updateQuantity() {
	lines := t.session.CartLines()
	if len(lines) == 0 {
		t.errorf("Cart is empty.")
		return
	}

	t.renderCart()
	index, ok := t.prompt.Int("Enter cart item number to update: ", 1, len(lines))
	if !ok {
		t.errorf("Invalid cart item number.")
		return
	}

	line := lines[index-1]
	product, found := collection.First(t.session.Products(), func(p models.Product) bool {
		return p.ID == line.ProductID
	})
	if !found {
		t.errorf("Product not found (data error).")
		return
	}

	maxQty := line.Qty + product.Stock
	newQty, ok := t.prompt.Int(fmt.Sprintf("Enter new quantity (1-%d): ", maxQty), 1, maxQty)
	if !ok {
		t.errorf("Invalid quantity.")
		return
	}

	updated, err := t.session.UpdateQuantity(index, newQty)
	if err != nil {
		t.renderError(err)
		return
	}
	t.successf("Cart quantity updated.")
	t.log.Info("cart update", "product_id", updated.ProductID, "qty", updated.Qty)
}

func (t *Terminal) removeFromCart() {
	lines := t.session.CartLines()
	if len(lines) == 0 {
		t.errorf("Cart is empty.")
		return
	}

	t.renderCart()
	index, ok := t.prompt.Int("Enter cart item number to remove: ", 1, len(lines))
	if !ok {
		t.errorf("Invalid cart item number.")
		return
	}

	line, err := t.session.RemoveFromCart(index)
	if err != nil {
		if !errors.Is(err, services.ErrDataIntegrity) {
			t.renderError(err)
			return
		}
		// The line is gone either way; only the stock return was lost.
		t.errorf("Product not found (data error); %d unit(s) dropped.", line.Qty)
		t.log.Warn("stock not returned", "product_id", line.ProductID, "qty", line.Qty)
	}
	t.successf("Removed from cart.")
	t.log.Info("cart remove", "product_id", line.ProductID, "qty", line.Qty)
}

func (t *Terminal) checkout() {
	if t.session.CartEmpty() {
		t.errorf("Cart is empty.")
		return
	}

	t.renderCart()
	total := t.session.CartTotal()
	payment, ok := t.prompt.Decimal(fmt.Sprintf("Enter payment amount (>= %s): ", total.StringFixed(2)), total)
	if !ok {
		t.errorf("Invalid payment.")
		return
	}

	receipt, err := t.session.Checkout(payment)
	if err != nil {
		t.renderError(err)
		return
	}

	t.renderReceipt(receipt)
	event.Fire(EventSaleCompleted, receipt)
	t.log.Info("sale completed", "total", receipt.Total.StringFixed(2), "lines", len(receipt.Lines))
}

// renderError maps engine rejections onto operator-facing messages. Anything
// unrecognised is shown verbatim.
func (t *Terminal) renderError(err error) {
	switch {
	case errors.Is(err, services.ErrInvalidSelection):
		t.errorf("Invalid selection.")
	case errors.Is(err, services.ErrOutOfStock):
		t.errorf("Out of stock.")
	case errors.Is(err, services.ErrInvalidQuantity):
		t.errorf("Invalid quantity.")
	case errors.Is(err, services.ErrInsufficientPayment):
		t.errorf("Insufficient payment.")
	case errors.Is(err, services.ErrEmptyCart):
		t.errorf("Cart is empty.")
	case errors.Is(err, services.ErrDataIntegrity):
		t.errorf("Product not found (data error).")
	default:
		t.errorf("%v", err)
	}
	t.log.Warn("operation rejected", "err", err)
}

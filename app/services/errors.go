package services

import "errors"

// Engine rejections. All of them are recoverable: the session keeps running,
// and a rejected operation never leaves a partial mutation behind. The engine
// itself never logs or retries — callers decide how to report these.
var (
	// ErrInvalidSelection means an index did not resolve to an existing
	// catalogue or cart entry.
	ErrInvalidSelection = errors.New("selection does not exist")

	// ErrOutOfStock rejects an add against a product with zero stock.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrInvalidQuantity rejects a quantity outside the currently valid
	// [1, max] range.
	ErrInvalidQuantity = errors.New("quantity out of range")

	// ErrInsufficientPayment rejects a payment below the total due.
	ErrInsufficientPayment = errors.New("payment is below the total due")

	// ErrEmptyCart reports a checkout attempted on an empty cart. The call
	// is a no-op.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrDataIntegrity flags a cart line whose product is gone from the
	// catalogue. Products are never deleted, so this should be unreachable;
	// it exists so corruption surfaces as an error instead of a crash.
	ErrDataIntegrity = errors.New("cart line references a missing product")
)

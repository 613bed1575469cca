package events

import "time"

const (
	ProductCreated  = "product.created"
	ProductUpdated  = "product.updated"
	ProductDeleted  = "product.deleted"
	StockUpdated    = "product.stock_updated"
	FeaturedToggled = "product.featured_toggled"
	ActiveToggled   = "product.active_toggled"
)

// ProductEvent is the envelope published for catalog changes. Stock
// fields are only set on stock events.
type ProductEvent struct {
	Event     string    `json:"event"`
	ProductID string    `json:"product_id"`
	VariantID string    `json:"variant_id,omitempty"`
	Quantity  *int      `json:"quantity,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(event ProductEvent) error
	Close()
}

// NopPublisher is used when no broker is configured; events are
// silently dropped.
type NopPublisher struct{}

func (NopPublisher) Publish(ProductEvent) error { return nil }
func (NopPublisher) Close()                     {}

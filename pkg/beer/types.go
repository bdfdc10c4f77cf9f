package beer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer represents a single beer in the inventory.
//
// ID, Version, CreatedDate and UpdateDate are assigned by the server. ID must
// be left zero when creating a beer and set for every other operation.
type Beer struct {
	ID             uuid.UUID       `json:"id,omitzero"             yaml:"id"`
	Version        *int            `json:"version,omitempty"       yaml:"version,omitempty"`
	Name           string          `json:"beerName"                yaml:"name"`
	Style          Style           `json:"beerStyle"               yaml:"style"`
	UPC            string          `json:"upc"                     yaml:"upc"`
	QuantityOnHand *int            `json:"quantityOnHand"          yaml:"quantity_on_hand"`
	Price          decimal.Decimal `json:"price"                   yaml:"price"`
	CreatedDate    *time.Time      `json:"createdDate,omitempty"   yaml:"created_date,omitempty"`
	UpdateDate     *time.Time      `json:"updateDate,omitempty"    yaml:"update_date,omitempty"`
}

// BeerPage is a page of beers as returned by Client.List.
type BeerPage = Page[Beer]

// Quantity returns the quantity on hand, or zero when the server omitted it.
func (b *Beer) Quantity() int {
	if b.QuantityOnHand == nil {
		return 0
	}

	return *b.QuantityOnHand
}

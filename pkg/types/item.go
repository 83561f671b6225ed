package types

import "fmt"

// Item categories with dedicated use-effects. Other categories are valid
// catalog entries but cannot be used on a Pokemon.
const (
	CategoryVitamin        = "Vitamin"
	CategoryEvolutionStone = "Evolution Stone"
	CategoryLevelingItem   = "Leveling Item"
)

// Item represents a consumable or holdable item. In the item catalog
// Quantity is zero; on a trainer's inventory it is the stack count.
type Item struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	BuyPrice    int    `json:"buy_price" validate:"min=0"`
	SellPrice   int    `json:"sell_price" validate:"min=0"`
	Effect      string `json:"effect"`
	Quantity    int    `json:"quantity,omitempty"`
}

// ForSale reports whether the item can be purchased. A buy price of zero
// marks an item as not for sale.
func (i Item) ForSale() bool {
	return i.BuyPrice > 0
}

// Validate checks the item's field constraints.
func (i Item) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

// String renders the item in the catalog listing format.
func (i Item) String() string {
	priceInfo := "Not for sale"
	if i.ForSale() {
		priceInfo = fmt.Sprintf("Buy: ₱%d | Sell: ₱%d", i.BuyPrice, i.SellPrice)
	}
	return fmt.Sprintf("%-15s [%-12s] %s | %s | Effect: %s",
		i.Name, i.Category, i.Description, priceInfo, i.Effect)
}

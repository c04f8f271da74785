package entity

// Product is a catalog item that can be bought with a card
type Product struct {
	ID    string `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Price int64  `json:"price" mapstructure:"price"`
}

// Purchase pins a product purchase to a debit of the product price
func (p Product) Purchase() (TransactionType, int64) {
	return TypeDebit, p.Price
}

package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a weak reference to a product plus a quantity. The cart
// never embeds product state; resolution happens on read.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Items []CartItem         `bson:"products" json:"products"`
}

// HasProduct reports whether the cart already holds a line item for the
// given product. Identity is the canonical hex form of the object id.
func (c *Cart) HasProduct(productID primitive.ObjectID) bool {
	for _, item := range c.Items {
		if item.ProductID.Hex() == productID.Hex() {
			return true
		}
	}
	return false
}

// ResolvedCartItem is a line item with its product reference expanded
// to the full document. Product is nil when the reference is dangling.
type ResolvedCartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

type ResolvedCart struct {
	ID    primitive.ObjectID `json:"_id"`
	Items []ResolvedCartItem `json:"products"`
}

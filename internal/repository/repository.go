package repository

import (
	"context"
	"errors"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
)

// ProductQuery is the typed form of the listing query: filter fields,
// a sort token and a page window. The mongo implementation translates
// it to a bson filter and find options.
type ProductQuery struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     string
	Skip     int64
	Limit    int64
}

// ProductRepository defines the product collection operations the
// services consume.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Find(ctx context.Context, q ProductQuery) ([]domain.Product, error)
	Count(ctx context.Context, q ProductQuery) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
}

// CartRepository defines the cart collection operations. Mutating
// calls return the cart as it stands after the write.
type CartRepository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID primitive.ObjectID, quantity int) (*domain.Cart, error)
	SetItemQuantity(ctx context.Context, cartID, productID primitive.ObjectID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID primitive.ObjectID) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, cartID primitive.ObjectID, items []domain.CartItem) (*domain.Cart, error)
	Delete(ctx context.Context, cartID primitive.ObjectID) (*domain.Cart, error)
}

package service

import (
	"context"
	"errors"
	"log"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"github.com/AlanEez/EntregaFinal-Estevez/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService implements the cart line-item operations. It owns no
// state of its own; every operation is a round-trip to the store.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

func parseCartID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrCartNotFound
	}
	return oid, nil
}

func (s *CartService) Create(ctx context.Context) (*domain.Cart, error) {
	return s.carts.Create(ctx)
}

// Get fetches a cart and resolves each line item's product reference
// to the full document. Dangling references resolve to a nil product
// rather than failing the whole read.
func (s *CartService) Get(ctx context.Context, cartID string) (*domain.ResolvedCart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}

	resolved := &domain.ResolvedCart{
		ID:    cart.ID,
		Items: make([]domain.ResolvedCartItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				log.Printf("cart %s references missing product %s", cartID, item.ProductID.Hex())
				product = nil
			} else {
				return nil, err
			}
		}
		resolved.Items = append(resolved.Items, domain.ResolvedCartItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	return resolved, nil
}

// AddProduct merges a product into the cart. A quantity below 1
// defaults to 1; an existing line item is incremented, never
// duplicated. The product must exist.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}
	pid, err := parseProductID(productID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.products.FindByID(ctx, pid); err != nil {
		return nil, err
	}

	return s.carts.AddItem(ctx, cid, pid, quantity)
}

// SetQuantity overwrites the quantity of an existing line item. The
// value is stored verbatim; no floor is enforced here.
func (s *CartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}
	pid, err := parseProductID(productID)
	if err != nil {
		// An unparseable product id cannot match any line item.
		return nil, repository.ErrItemNotFound
	}

	return s.carts.SetItemQuantity(ctx, cid, pid, quantity)
}

// RemoveProduct removes any line item for the product. It succeeds
// even when the product is not in the cart.
func (s *CartService) RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}
	pid, err := parseProductID(productID)
	if err != nil {
		// Nothing to pull; still confirm the cart exists.
		return s.carts.FindByID(ctx, cid)
	}

	return s.carts.RemoveItem(ctx, cid, pid)
}

// ReplaceProducts overwrites the whole line-item sequence with the
// supplied one. Items are not validated against the product catalog.
func (s *CartService) ReplaceProducts(ctx context.Context, cartID string, items []domain.CartItem) (*domain.Cart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}

	return s.carts.ReplaceItems(ctx, cid, items)
}

func (s *CartService) Delete(ctx context.Context, cartID string) (*domain.Cart, error) {
	cid, err := parseCartID(cartID)
	if err != nil {
		return nil, err
	}

	return s.carts.Delete(ctx, cid)
}

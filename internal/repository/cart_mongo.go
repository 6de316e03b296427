package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *mongoCartRepository) Create(ctx context.Context) (*domain.Cart, error) {
	cart := &domain.Cart{Items: []domain.CartItem{}}

	res, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}
	return cart, nil
}

func (r *mongoCartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Cart, error) {
	var cart domain.Cart

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// AddItem merges a product into the cart: an existing line item gets
// its quantity incremented, otherwise a new line item is appended.
// Both writes are single atomic update operators, not read-then-save.
func (r *mongoCartRepository) AddItem(ctx context.Context, cartID, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	existing, err := r.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart domain.Cart
	if existing.HasProduct(productID) {
		filter := bson.M{"_id": cartID, "products.product": productID}
		update := bson.M{"$inc": bson.M{"products.$.quantity": quantity}}

		err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	} else {
		filter := bson.M{"_id": cartID}
		update := bson.M{"$push": bson.M{"products": domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
		}}}

		err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return &cart, nil
}

// SetItemQuantity overwrites the quantity of an existing line item.
func (r *mongoCartRepository) SetItemQuantity(ctx context.Context, cartID, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	filter := bson.M{"_id": cartID, "products.product": productID}
	update := bson.M{"$set": bson.M{"products.$.quantity": quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart domain.Cart
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish a missing cart from a missing line item.
			if _, findErr := r.FindByID(ctx, cartID); findErr != nil {
				return nil, findErr
			}
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item quantity: %w", err)
	}

	return &cart, nil
}

// RemoveItem pulls any line item for the product. Removing a product
// that is not in the cart is a no-op, not an error.
func (r *mongoCartRepository) RemoveItem(ctx context.Context, cartID, productID primitive.ObjectID) (*domain.Cart, error) {
	filter := bson.M{"_id": cartID}
	update := bson.M{"$pull": bson.M{"products": bson.M{"product": productID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart domain.Cart
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	return &cart, nil
}

// ReplaceItems overwrites the whole line-item sequence verbatim.
func (r *mongoCartRepository) ReplaceItems(ctx context.Context, cartID primitive.ObjectID, items []domain.CartItem) (*domain.Cart, error) {
	if items == nil {
		items = []domain.CartItem{}
	}

	filter := bson.M{"_id": cartID}
	update := bson.M{"$set": bson.M{"products": items}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart domain.Cart
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to replace items: %w", err)
	}

	return &cart, nil
}

func (r *mongoCartRepository) Delete(ctx context.Context, cartID primitive.ObjectID) (*domain.Cart, error) {
	var cart domain.Cart

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": cartID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to delete cart: %w", err)
	}

	return &cart, nil
}

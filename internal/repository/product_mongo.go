package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// buildProductFilter translates the typed query into a bson filter.
// Category and the price bounds are ANDed; a search term adds an $or
// over title and description with case-insensitive matching.
func buildProductFilter(q ProductQuery) bson.M {
	filter := bson.M{}

	if q.Category != "" {
		filter["category"] = q.Category
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}

	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}

	return filter
}

// buildProductSort maps the wire-level sort token to a sort document.
// Unknown non-empty tokens sort by price: ascending for the literal
// "asc", descending otherwise. Empty means natural order.
func buildProductSort(sort string) bson.D {
	switch sort {
	case "":
		return nil
	case "name_asc":
		return bson.D{{Key: "title", Value: 1}}
	case "name_desc":
		return bson.D{{Key: "title", Value: -1}}
	case "date_asc":
		return bson.D{{Key: "created_at", Value: 1}}
	case "date_desc":
		return bson.D{{Key: "created_at", Value: -1}}
	case "asc":
		return bson.D{{Key: "price", Value: 1}}
	default:
		return bson.D{{Key: "price", Value: -1}}
	}
}

func (r *MongoProductRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	p.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var p domain.Product

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *MongoProductRepository) Find(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	opts := options.Find().
		SetSkip(q.Skip).
		SetLimit(q.Limit)
	if sort := buildProductSort(q.Sort); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, buildProductFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (r *MongoProductRepository) Count(ctx context.Context, q ProductQuery) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, buildProductFilter(q))
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (r *MongoProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, patch domain.ProductPatch) (*domain.Product, error) {
	set := bson.M{}
	if patch.ExternalID != nil {
		set["id"] = *patch.ExternalID
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Code != nil {
		set["code"] = *patch.Code
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}

	// An empty $set is rejected by the server; an empty patch is a read.
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p domain.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

func (r *MongoProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var p domain.Product

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &p, nil
}

func (r *MongoProductRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "price", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func TestBuildProductFilter_Empty(t *testing.T) {
	filter := buildProductFilter(ProductQuery{})
	assert.Empty(t, filter)
}

func TestBuildProductFilter_Category(t *testing.T) {
	filter := buildProductFilter(ProductQuery{Category: "shoes"})
	assert.Equal(t, bson.M{"category": "shoes"}, filter)
}

func TestBuildProductFilter_PriceBounds(t *testing.T) {
	filter := buildProductFilter(ProductQuery{
		MinPrice: float64Ptr(10),
		MaxPrice: float64Ptr(50),
	})
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 10.0, "$lte": 50.0}}, filter)

	filter = buildProductFilter(ProductQuery{MinPrice: float64Ptr(10)})
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 10.0}}, filter)

	filter = buildProductFilter(ProductQuery{MaxPrice: float64Ptr(50)})
	assert.Equal(t, bson.M{"price": bson.M{"$lte": 50.0}}, filter)
}

func TestBuildProductFilter_Search(t *testing.T) {
	filter := buildProductFilter(ProductQuery{Search: "mug"})

	regex := primitive.Regex{Pattern: "mug", Options: "i"}
	assert.Equal(t, bson.A{
		bson.M{"title": regex},
		bson.M{"description": regex},
	}, filter["$or"])
}

func TestBuildProductFilter_CombinesAllClauses(t *testing.T) {
	filter := buildProductFilter(ProductQuery{
		Category: "shoes",
		MinPrice: float64Ptr(10),
		MaxPrice: float64Ptr(50),
		Search:   "runner",
	})

	// Non-search clauses are ANDed at the top level; the search clause
	// is a nested $or ANDed with the rest.
	assert.Equal(t, "shoes", filter["category"])
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["price"])
	assert.Len(t, filter["$or"], 2)
}

func TestBuildProductSort_Tokens(t *testing.T) {
	tests := []struct {
		sort string
		want bson.D
	}{
		{"", nil},
		{"name_asc", bson.D{{Key: "title", Value: 1}}},
		{"name_desc", bson.D{{Key: "title", Value: -1}}},
		{"date_asc", bson.D{{Key: "created_at", Value: 1}}},
		{"date_desc", bson.D{{Key: "created_at", Value: -1}}},
		{"asc", bson.D{{Key: "price", Value: 1}}},
		{"desc", bson.D{{Key: "price", Value: -1}}},
		{"anything-else", bson.D{{Key: "price", Value: -1}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buildProductSort(tt.sort), "sort=%q", tt.sort)
	}
}

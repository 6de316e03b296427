package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"github.com/AlanEez/EntregaFinal-Estevez/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultLimit = 10
	defaultPage  = 1
)

var ErrMissingProductFields = errors.New("missing required product fields")

// CatalogService implements the product listing query builder and the
// product CRUD operations on top of the product repository.
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListParams are the raw, string-typed query parameters of the listing
// endpoint. All of them are optional.
type ListParams struct {
	Limit    string
	Page     string
	Sort     string
	Category string
	MinPrice string
	MaxPrice string
	Search   string
}

// ProductPage is the listing response envelope: one page of products
// plus pagination metadata and navigation links.
type ProductPage struct {
	Status      string           `json:"status"`
	Payload     []domain.Product `json:"payload"`
	TotalPages  int64            `json:"totalPages"`
	PrevPage    *int64           `json:"prevPage"`
	NextPage    *int64           `json:"nextPage"`
	Page        int64            `json:"page"`
	HasPrevPage bool             `json:"hasPrevPage"`
	HasNextPage bool             `json:"hasNextPage"`
	PrevLink    *string          `json:"prevLink"`
	NextLink    *string          `json:"nextLink"`
}

// parsePositive coerces a wire value to a positive integer, falling
// back to the default for anything absent, non-numeric or < 1.
func parsePositive(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// parsePrice coerces an optional price bound. Invalid input is treated
// as an absent bound.
func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (s *CatalogService) List(ctx context.Context, p ListParams) (*ProductPage, error) {
	limit := parsePositive(p.Limit, defaultLimit)
	page := parsePositive(p.Page, defaultPage)

	query := repository.ProductQuery{
		Category: p.Category,
		MinPrice: parsePrice(p.MinPrice),
		MaxPrice: parsePrice(p.MaxPrice),
		Search:   p.Search,
		Sort:     p.Sort,
		Skip:     (page - 1) * limit,
		Limit:    limit,
	}

	total, err := s.products.Count(ctx, query)
	if err != nil {
		return nil, err
	}

	products, err := s.products.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit

	result := &ProductPage{
		Status:      "success",
		Payload:     products,
		TotalPages:  totalPages,
		Page:        page,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
	if result.HasPrevPage {
		prev := page - 1
		result.PrevPage = &prev
		link := pageLink(p, limit, prev)
		result.PrevLink = &link
	}
	if result.HasNextPage {
		next := page + 1
		result.NextPage = &next
		link := pageLink(p, limit, next)
		result.NextLink = &link
	}

	return result, nil
}

// pageLink rebuilds the listing URL with every original parameter and
// the adjusted page number. Unset parameters are kept as empty values
// so links stay stable regardless of which filters were used.
func pageLink(p ListParams, limit, page int64) string {
	return fmt.Sprintf("/api/products?limit=%d&page=%d&sort=%s&category=%s&minPrice=%s&maxPrice=%s&search=%s",
		limit, page,
		url.QueryEscape(p.Sort),
		url.QueryEscape(p.Category),
		url.QueryEscape(p.MinPrice),
		url.QueryEscape(p.MaxPrice),
		url.QueryEscape(p.Search),
	)
}

// parseProductID resolves the wire form of a product id. A malformed
// id can never resolve to a document, so it maps to not-found.
func parseProductID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrProductNotFound
	}
	return oid, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, oid)
}

func (s *CatalogService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Title == "" || p.Description == "" || p.Code == "" || p.Category == "" {
		return nil, ErrMissingProductFields
	}
	return s.products.Insert(ctx, &p)
}

func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	return s.products.UpdateByID(ctx, oid, patch)
}

func (s *CatalogService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	return s.products.DeleteByID(ctx, oid)
}

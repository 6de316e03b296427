package service

import (
	"context"
	"testing"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"github.com/AlanEez/EntregaFinal-Estevez/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCartRepo struct {
	cart *domain.Cart
	err  error

	addCalled     bool
	lastProductID primitive.ObjectID
	lastQuantity  int
	lastItems     []domain.CartItem
}

func (m *mockCartRepo) Create(context.Context) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil || m.cart.ID.Hex() != id.Hex() {
		return nil, repository.ErrCartNotFound
	}
	return m.cart, nil
}

func (m *mockCartRepo) AddItem(_ context.Context, _, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	m.addCalled = true
	m.lastProductID = productID
	m.lastQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartRepo) SetItemQuantity(_ context.Context, _, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	m.lastProductID = productID
	m.lastQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, _, productID primitive.ObjectID) (*domain.Cart, error) {
	m.lastProductID = productID
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartRepo) ReplaceItems(_ context.Context, _ primitive.ObjectID, items []domain.CartItem) (*domain.Cart, error) {
	m.lastItems = items
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *mockCartRepo) Delete(_ context.Context, id primitive.ObjectID) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil || m.cart.ID.Hex() != id.Hex() {
		return nil, repository.ErrCartNotFound
	}
	return m.cart, nil
}

func newCartFixture() (*mockCartRepo, *mockProductRepo, *domain.Product, *domain.Cart) {
	product := &domain.Product{
		ID:    primitive.NewObjectID(),
		Title: "Mug",
		Price: 9,
	}
	cart := &domain.Cart{ID: primitive.NewObjectID(), Items: []domain.CartItem{}}

	carts := &mockCartRepo{cart: cart}
	products := &mockProductRepo{byID: map[string]*domain.Product{
		product.ID.Hex(): product,
	}}
	return carts, products, product, cart
}

func TestAddProduct_ChecksProductExists(t *testing.T) {
	carts, products, _, cart := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.AddProduct(context.Background(), cart.ID.Hex(), primitive.NewObjectID().Hex(), 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.False(t, carts.addCalled)
}

func TestAddProduct_QuantityDefaultsToOne(t *testing.T) {
	carts, products, product, cart := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.AddProduct(context.Background(), cart.ID.Hex(), product.ID.Hex(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, carts.lastQuantity)

	_, err = svc.AddProduct(context.Background(), cart.ID.Hex(), product.ID.Hex(), -5)
	require.NoError(t, err)
	assert.Equal(t, 1, carts.lastQuantity)

	_, err = svc.AddProduct(context.Background(), cart.ID.Hex(), product.ID.Hex(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, carts.lastQuantity)
}

func TestAddProduct_MalformedIDs(t *testing.T) {
	carts, products, product, cart := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.AddProduct(context.Background(), "nope", product.ID.Hex(), 1)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = svc.AddProduct(context.Background(), cart.ID.Hex(), "nope", 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.False(t, carts.addCalled)
}

func TestSetQuantity_StoredVerbatim(t *testing.T) {
	carts, products, product, cart := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.SetQuantity(context.Background(), cart.ID.Hex(), product.ID.Hex(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, carts.lastQuantity)

	// No floor on absolute updates; the value goes through as given.
	_, err = svc.SetQuantity(context.Background(), cart.ID.Hex(), product.ID.Hex(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, carts.lastQuantity)
}

func TestSetQuantity_MalformedProductIDIsItemNotFound(t *testing.T) {
	carts, products, _, cart := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.SetQuantity(context.Background(), cart.ID.Hex(), "nope", 2)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestRemoveProduct_MalformedProductIDIsNoop(t *testing.T) {
	carts, products, _, cart := newCartFixture()
	svc := NewCartService(carts, products)

	got, err := svc.RemoveProduct(context.Background(), cart.ID.Hex(), "nope")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
}

func TestGet_ResolvesProductReferences(t *testing.T) {
	carts, products, product, cart := newCartFixture()
	dangling := primitive.NewObjectID()
	cart.Items = []domain.CartItem{
		{ProductID: product.ID, Quantity: 2},
		{ProductID: dangling, Quantity: 1},
	}
	svc := NewCartService(carts, products)

	resolved, err := svc.Get(context.Background(), cart.ID.Hex())
	require.NoError(t, err)
	require.Len(t, resolved.Items, 2)

	require.NotNil(t, resolved.Items[0].Product)
	assert.Equal(t, "Mug", resolved.Items[0].Product.Title)
	assert.Equal(t, 2, resolved.Items[0].Quantity)

	// A dangling reference resolves to a nil product, not an error.
	assert.Nil(t, resolved.Items[1].Product)
	assert.Equal(t, 1, resolved.Items[1].Quantity)
}

func TestGet_CartNotFound(t *testing.T) {
	carts, products, _, _ := newCartFixture()
	svc := NewCartService(carts, products)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestReplaceProducts_PassesItemsVerbatim(t *testing.T) {
	carts, products, _, cart := newCartFixture()
	svc := NewCartService(carts, products)

	items := []domain.CartItem{
		{ProductID: primitive.NewObjectID(), Quantity: 2},
		{ProductID: primitive.NewObjectID(), Quantity: 9},
	}

	_, err := svc.ReplaceProducts(context.Background(), cart.ID.Hex(), items)
	require.NoError(t, err)
	assert.Equal(t, items, carts.lastItems)
}

package cart

import (
	"errors"
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id uint, name string, price float64, sizes ...string) *model.Product {
	return &model.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Sizes: pq.StringArray(sizes),
	}
}

func openTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := Open(NewSessionStore().ForSession("test-session"))
	require.NoError(t, err)
	return c
}

func TestAddLineCreatesNewLine(t *testing.T) {
	c := openTestCart(t)

	err := c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M", "L"), "M", 1)
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	line := c.Lines()[0]
	assert.Equal(t, uint(1), line.ProductID)
	assert.Equal(t, "M", line.Size)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 89.99, line.Price)
	assert.NotZero(t, line.ID)
}

func TestAddLineMergesSameProductAndSize(t *testing.T) {
	c := openTestCart(t)
	p := testProduct(1, "Oxford Shirt", 89.99, "M")

	require.NoError(t, c.AddLine(p, "M", 1))
	require.NoError(t, c.AddLine(p, "M", 2))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Lines()[0].Quantity)
}

func TestAddLineDifferentSizesStaySeparate(t *testing.T) {
	c := openTestCart(t)
	p := testProduct(1, "Oxford Shirt", 89.99, "M", "L")

	require.NoError(t, c.AddLine(p, "M", 1))
	require.NoError(t, c.AddLine(p, "L", 1))

	assert.Equal(t, 2, c.Len())
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	c := openTestCart(t)
	p := testProduct(1, "Oxford Shirt", 89.99, "M")

	assert.ErrorIs(t, c.AddLine(p, "M", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddLine(p, "M", -2), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := openTestCart(t)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 2))

	require.NoError(t, c.SetQuantity(0, 0))

	assert.True(t, c.IsEmpty())
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	c := openTestCart(t)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 2))

	require.NoError(t, c.SetQuantity(0, 5))

	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestSetQuantityUnknownIndex(t *testing.T) {
	c := openTestCart(t)
	assert.ErrorIs(t, c.SetQuantity(0, 1), ErrLineNotFound)
	assert.ErrorIs(t, c.RemoveLine(3), ErrLineNotFound)
}

func TestSubtotal(t *testing.T) {
	c := openTestCart(t)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))
	require.NoError(t, c.AddLine(testProduct(2, "Linen Shirt", 75.00, "L"), "L", 2))

	assert.InDelta(t, 239.99, c.Subtotal(), 0.001)
}

func TestClearEmptiesCartAndRepository(t *testing.T) {
	store := NewSessionStore()
	repo := store.ForSession("s1")
	c, err := Open(repo)
	require.NoError(t, err)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))

	require.NoError(t, c.Clear())

	assert.True(t, c.IsEmpty())
	persisted, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestReopenSeesPersistedLines(t *testing.T) {
	store := NewSessionStore()
	repo := store.ForSession("s1")

	first, err := Open(repo)
	require.NoError(t, err)
	require.NoError(t, first.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 2))

	second, err := Open(repo)
	require.NoError(t, err)
	require.Equal(t, 1, second.Len())
	assert.Equal(t, 2, second.Lines()[0].Quantity)
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	store := NewSessionStore()

	a, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	require.NoError(t, a.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))

	b, err := Open(store.ForSession("b"))
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestSessionStoreDrop(t *testing.T) {
	store := NewSessionStore()
	a, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	require.NoError(t, a.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))

	store.Drop("a")

	reopened, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	assert.True(t, reopened.IsEmpty())
}

func TestSessionStoreExpiresIdleCarts(t *testing.T) {
	store := NewSessionStoreWithTTL(time.Hour)
	current := time.Now()
	store.now = func() time.Time { return current }

	c, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))

	current = current.Add(2 * time.Hour)

	reopened, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	assert.True(t, reopened.IsEmpty())
}

func TestSessionStoreSweepBoundsIdleSessions(t *testing.T) {
	store := NewSessionStoreWithTTL(time.Hour)
	current := time.Now()
	store.now = func() time.Time { return current }

	for _, id := range []string{"a", "b", "c"} {
		store.ForSession(id)
	}
	require.Equal(t, 3, store.Len())

	current = current.Add(2 * time.Hour)
	store.ForSession("d")

	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreKeepsActiveCarts(t *testing.T) {
	store := NewSessionStoreWithTTL(time.Hour)
	current := time.Now()
	store.now = func() time.Time { return current }

	c, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	require.NoError(t, c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1))

	// Touch within the TTL; the expiry window restarts.
	current = current.Add(30 * time.Minute)
	store.ForSession("a")
	current = current.Add(45 * time.Minute)

	reopened, err := Open(store.ForSession("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}

// failingRepository rejects every write
type failingRepository struct{}

var errWrite = errors.New("backend unavailable")

func (failingRepository) Load() ([]Line, error) { return nil, nil }
func (failingRepository) Save(*Line) error      { return errWrite }
func (failingRepository) Remove(uint) error     { return errWrite }
func (failingRepository) Clear() error          { return errWrite }

func TestFailedPersistenceLeavesCartUnchanged(t *testing.T) {
	c, err := Open(failingRepository{})
	require.NoError(t, err)

	err = c.AddLine(testProduct(1, "Oxford Shirt", 89.99, "M"), "M", 1)
	assert.ErrorIs(t, err, errWrite)
	assert.True(t, c.IsEmpty())
}

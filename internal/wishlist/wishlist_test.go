package wishlist

import (
	"testing"

	"github.com/priya1793/shopverse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) domain.Product {
	return domain.Product{ID: id, Name: "product " + id}
}

func TestAdd_IsIdempotent(t *testing.T) {
	sut := NewStore()

	sut.Add(product("1"))
	sut.Add(product("1"))

	assert.Len(t, sut.Items(), 1)
	assert.True(t, sut.Contains("1"))
}

func TestRemove(t *testing.T) {
	sut := NewStore()
	sut.Add(product("1"))
	sut.Add(product("2"))

	sut.Remove("1")

	require.Len(t, sut.Items(), 1)
	assert.Equal(t, "2", sut.Items()[0].ID)

	sut.Remove("unknown") // no-op
	assert.Len(t, sut.Items(), 1)
}

func TestToggle(t *testing.T) {
	sut := NewStore()

	assert.True(t, sut.Toggle(product("1")))
	assert.True(t, sut.Contains("1"))

	assert.False(t, sut.Toggle(product("1")))
	assert.False(t, sut.Contains("1"))
	assert.Empty(t, sut.Items())
}

func TestItems_PreservesInsertionOrder(t *testing.T) {
	sut := NewStore()
	sut.Add(product("3"))
	sut.Add(product("1"))
	sut.Add(product("2"))

	items := sut.Items()

	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "2", items[2].ID)
}

func TestItems_ReturnsCopy(t *testing.T) {
	sut := NewStore()
	sut.Add(product("1"))

	items := sut.Items()
	items[0].ID = "mutated"

	assert.Equal(t, "1", sut.Items()[0].ID)
}

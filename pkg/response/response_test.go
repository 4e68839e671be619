package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	last := NewPagination(25, 3, 10)
	assert.False(t, last.HasNextPage)
}

func TestNewPage_NilItems(t *testing.T) {
	p := NewPage[string](nil, 0, 1, 10)
	assert.NotNil(t, p.Items)
	assert.Len(t, p.Items, 0)
}

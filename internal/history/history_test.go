package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentOrdersByLastUse(t *testing.T) {
	r := NewRecent(3)
	r.Add("BLCA11")
	r.Add("HGLG11")
	r.Add("MXRF11")
	r.Add("BLCA11")

	assert.Equal(t, []string{"BLCA11", "MXRF11", "HGLG11"}, r.List())
}

func TestRecentEvictsOldest(t *testing.T) {
	r := NewRecent(2)
	r.Add("A11")
	r.Add("B11")
	r.Add("C11")

	assert.Equal(t, []string{"C11", "B11"}, r.List())
	assert.Equal(t, 2, r.Len())
}

func TestRecentIgnoresEmptyAndBadSize(t *testing.T) {
	r := NewRecent(0)
	r.Add("")
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())
}

package input

import (
	"strconv"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/ui/input/types"
	"fnetgrip/internal/ui/logic"
	"fnetgrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Navigator *logic.Navigator
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.Selected()
}

// TotalItems returns the number of rows after filtering
func (c *ModelContext) TotalItems() int {
	return len(c.State.FilteredDocuments())
}

func (c *ModelContext) CanSearch() bool {
	return c.State.CanSearch()
}

func (c *ModelContext) HasResult() bool {
	return c.State.LastResult != nil
}

// CurrentDocumentID returns the id of the highlighted row
func (c *ModelContext) CurrentDocumentID() (int, bool) {
	docs := c.State.FilteredDocuments()
	i := c.CurrentIndex()
	if i < 0 || i >= len(docs) {
		return 0, false
	}
	return docs[i].ID, true
}

func (c *ModelContext) CategoryOptions() []types.Option {
	var out []types.Option
	for _, opt := range c.State.CategoryOptions() {
		out = append(out, types.Option{Value: opt.Value, Label: opt.Label()})
	}
	return out
}

func (c *ModelContext) CurrentCategory() string {
	return c.State.CategoryFilter
}

func (c *ModelContext) PageSizeOptions() []types.Option {
	out := make([]types.Option, 0, len(domain.PageSizes))
	for _, n := range domain.PageSizes {
		v := strconv.Itoa(n)
		out = append(out, types.Option{Value: v, Label: v})
	}
	return out
}

func (c *ModelContext) CurrentPageSize() string {
	return strconv.Itoa(c.State.PageSize)
}

package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog is an ordered, read-only set of gas profiles.
// It is built once and shared without locking.
type Catalog struct {
	gases []Gas
	index map[string]int
}

// NewCatalog validates the given gases and builds a catalog from the valid ones.
// Invalid and duplicate entries are skipped and reported together in the
// returned error; the catalog holds everything that passed.
func NewCatalog(gases []Gas) (*Catalog, error) {
	c := &Catalog{
		gases: make([]Gas, 0, len(gases)),
		index: make(map[string]int, len(gases)),
	}

	var result *multierror.Error
	for i, g := range gases {
		if err := g.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if _, dup := c.index[g.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w: duplicate id %q", i, ErrInvalidGasProfile, g.ID))
			continue
		}
		c.index[g.ID] = len(c.gases)
		c.gases = append(c.gases, g)
	}

	return c, result.ErrorOrNil()
}

// Len returns the number of gases
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.gases)
}

// Get looks up a gas by ID
func (c *Catalog) Get(id string) (Gas, bool) {
	if c == nil {
		return Gas{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Gas{}, false
	}
	return c.gases[i], true
}

// Gases returns a copy of the gases in catalog order
func (c *Catalog) Gases() []Gas {
	if c == nil {
		return nil
	}
	out := make([]Gas, len(c.gases))
	copy(out, c.gases)
	return out
}

// IDs returns gas IDs in catalog order
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.gases))
	for i, g := range c.gases {
		ids[i] = g.ID
	}
	return ids
}

// Default returns the first gas, which the UI selects on start.
func (c *Catalog) Default() (Gas, bool) {
	if c.Len() == 0 {
		return Gas{}, false
	}
	return c.gases[0], true
}

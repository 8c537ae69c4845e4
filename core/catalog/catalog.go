// Package catalog - Subscription tier catalog
// Holds the ordered, immutable list of tiers the calculator compares.
// A Catalog is only ever built through New, which enforces ordering.
package catalog

import (
	stderrors "errors"

	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
)

// DefaultTierKey is the tier preselected when a request names none
const DefaultTierKey = "silver"

// Catalog is an immutable, validated, fee-ordered list of tiers
type Catalog struct {
	tiers []types.Tier
	index map[string]int
}

// New validates tiers and returns a catalog holding its own copy of them.
// A malformed catalog is rejected, never reordered.
func New(tiers ...types.Tier) (*Catalog, error) {
	if errs := Validate(tiers, DefaultValidationRules()); len(errs) > 0 {
		return nil, errors.Config("invalid tier catalog", stderrors.Join(errs...)).
			WithContext("violations", len(errs))
	}

	c := &Catalog{
		tiers: make([]types.Tier, len(tiers)),
		index: make(map[string]int, len(tiers)),
	}
	for i, t := range tiers {
		c.tiers[i] = cloneTier(t)
		c.index[t.Key] = i
	}
	return c, nil
}

// MustNew is New that panics on an invalid catalog
func MustNew(tiers ...types.Tier) *Catalog {
	c, err := New(tiers...)
	if err != nil {
		panic(err)
	}
	return c
}

// Tiers returns a copy of the tiers in ascending fee order
func (c *Catalog) Tiers() []types.Tier {
	out := make([]types.Tier, len(c.tiers))
	for i, t := range c.tiers {
		out[i] = cloneTier(t)
	}
	return out
}

// Get returns the tier with the given key
func (c *Catalog) Get(key string) (types.Tier, bool) {
	i, ok := c.index[key]
	if !ok {
		return types.Tier{}, false
	}
	return cloneTier(c.tiers[i]), true
}

// Lookup is Get returning a NotFound error for unknown keys
func (c *Catalog) Lookup(key string) (types.Tier, error) {
	t, ok := c.Get(key)
	if !ok {
		return types.Tier{}, errors.NotFound("tier", key)
	}
	return t, nil
}

// DefaultTier returns the silver tier when present, else the cheapest
func (c *Catalog) DefaultTier() types.Tier {
	if t, ok := c.Get(DefaultTierKey); ok {
		return t
	}
	return cloneTier(c.tiers[0])
}

// Keys returns tier keys in catalog order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		keys[i] = t.Key
	}
	return keys
}

// Len returns the number of tiers
func (c *Catalog) Len() int {
	return len(c.tiers)
}

func cloneTier(t types.Tier) types.Tier {
	if t.Features != nil {
		t.Features = append([]string(nil), t.Features...)
	}
	return t
}

package types

import (
	"encoding/json"
	"math"
)

// NullFloat is a float64 that may be absent.
// The zero value is absent.
type NullFloat struct {
	Value float64
	Valid bool
}

// Some returns a present value
func Some(v float64) NullFloat {
	return NullFloat{Value: v, Valid: true}
}

// None returns an absent value
func None() NullFloat {
	return NullFloat{}
}

// Get returns the value and whether it is present
func (n NullFloat) Get() (float64, bool) {
	return n.Value, n.Valid
}

// Or returns the value, or fallback when absent
func (n NullFloat) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Value
}

// MarshalJSON encodes an absent value as null
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON decodes null as absent
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

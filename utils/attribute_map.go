package utils

import (
	"github.com/pkg/errors"
)

// AttributeMap is a convenience wrapper for pulling out typed information from a map.
type AttributeMap map[string]interface{}

// Has returns whether or not the given name is in the map.
func (am AttributeMap) Has(name string) bool {
	_, has := am[name]
	return has
}

// GetString attempts to return a string present in the map with
// the given name; returns an empty string otherwise.
func (am AttributeMap) GetString(name string) string {
	if am == nil {
		return ""
	}
	x := am[name]
	if x == nil {
		return ""
	}

	if s, ok := x.(string); ok {
		return s
	}

	panic(errors.Errorf("wanted a string for (%s) but got (%v) %T", name, x, x))
}

// GetInt attempts to return an integer present in the map with
// the given name; returns the given default otherwise.
func (am AttributeMap) GetInt(name string, def int) int {
	if am == nil {
		return def
	}
	x, has := am[name]
	if !has {
		return def
	}

	if v, ok := x.(int); ok {
		return v
	}

	if v, ok := x.(float64); ok {
		// json defaults to float64, this is safe enough for attribute use
		return int(v)
	}

	panic(errors.Errorf("wanted an int for (%s) but got (%v) %T", name, x, x))
}

// GetFloat64 attempts to return a float64 present in the map with
// the given name; returns the given default otherwise.
func (am AttributeMap) GetFloat64(name string, def float64) float64 {
	if am == nil {
		return def
	}
	x, has := am[name]
	if !has {
		return def
	}

	if v, ok := x.(float64); ok {
		return v
	}

	if v, ok := x.(int); ok {
		return float64(v)
	}

	panic(errors.Errorf("wanted a float64 for (%s) but got (%v) %T", name, x, x))
}

// GetBool attempts to return a boolean present in the map with
// the given name; returns the given default otherwise.
func (am AttributeMap) GetBool(name string, def bool) bool {
	if am == nil {
		return def
	}
	x, has := am[name]
	if !has {
		return def
	}

	if v, ok := x.(bool); ok {
		return v
	}

	panic(errors.Errorf("wanted a bool for (%s) but got (%v) %T", name, x, x))
}

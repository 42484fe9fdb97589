package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// NullFloat is a number that may be absent. Absence is distinct from zero,
// and NaN or infinite values are never held.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a present NullFloat, or an absent one when v is not finite.
func Float(v float64) NullFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat{}
	}
	return NullFloat{Float64: v, Valid: true}
}

// Get returns the value and whether it is present.
func (n NullFloat) Get() (float64, bool) {
	return n.Float64, n.Valid
}

// Or returns the value, or def when absent.
func (n NullFloat) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Float64
}

// MarshalJSON encodes an absent value as null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else decodes
// as absent rather than failing.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	*n = NullFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = ParseFloat(v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (n NullFloat) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML patient files.
func (n *NullFloat) UnmarshalYAML(value *yaml.Node) error {
	*n = NullFloat{}
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		return nil
	}
	*n = ParseFloat(value.Value)
	return nil
}

// ParseFloat converts a loosely typed value into a NullFloat.
func ParseFloat(v any) NullFloat {
	switch x := v.(type) {
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case int:
		return Float(float64(x))
	case int64:
		return Float(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return NullFloat{}
		}
		return Float(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return NullFloat{}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return NullFloat{}
		}
		return Float(f)
	case NullFloat:
		return x
	}
	return NullFloat{}
}

// NullString is a string that may be absent.
type NullString struct {
	String string
	Valid  bool
}

// String returns a present NullString.
func String(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Get returns the value and whether it is present.
func (n NullString) Get() (string, bool) {
	return n.String, n.Valid
}

// Or returns the value, or def when absent.
func (n NullString) Or(def string) string {
	if !n.Valid {
		return def
	}
	return n.String
}

// MarshalJSON encodes an absent value as null.
func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.String)
}

// UnmarshalJSON accepts strings and scalar values. Objects and arrays decode
// as absent.
func (n *NullString) UnmarshalJSON(data []byte) error {
	*n = NullString{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = ParseString(v)
	return nil
}

// ParseString converts a loosely typed scalar into a NullString.
func ParseString(v any) NullString {
	switch x := v.(type) {
	case string:
		return String(x)
	case float64:
		return String(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		return String(strconv.FormatBool(x))
	case json.Number:
		return String(x.String())
	case NullString:
		return x
	}
	return NullString{}
}

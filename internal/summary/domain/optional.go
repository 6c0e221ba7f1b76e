package domain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a JSON member that can be absent, explicitly null, or set.
// The zero value is absent.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns a present Optional holding JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// Has reports whether the member carries a non-null value.
func (o Optional[T]) Has() bool {
	return o.Present && !o.Null
}

// UnmarshalJSON only runs for members present in the input, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Has() {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

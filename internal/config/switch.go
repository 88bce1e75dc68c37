package config

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// errSwitchTrue is returned when a switchable setting is given a literal true.
// Only false carries meaning (it disables the setting).
var errSwitchTrue = errors.New("true is not a valid value: set a value or use false to disable")

// Switch is a setting that can be absent (a nil *Switch), explicitly disabled
// with a literal false, or set to a value.
type Switch[T any] struct {
	Value T
	Off   bool
}

// On returns a Switch set to v.
func On[T any](v T) *Switch[T] {
	return &Switch[T]{Value: v}
}

// Off returns a disabled Switch.
func Off[T any]() *Switch[T] {
	return &Switch[T]{Off: true}
}

// Enabled reports whether s is present and not disabled.
func (s *Switch[T]) Enabled() bool {
	return s != nil && !s.Off
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Switch[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			return errSwitchTrue
		}
		*s = Switch[T]{Off: true}
		return nil
	}

	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*s = Switch[T]{Value: v}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Switch[T]) MarshalYAML() (any, error) {
	if s.Off {
		return false, nil
	}
	return s.Value, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Switch[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("false")):
		*s = Switch[T]{Off: true}
		return nil
	case bytes.Equal(trimmed, []byte("true")):
		return errSwitchTrue
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*s = Switch[T]{Value: v}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Switch[T]) MarshalJSON() ([]byte, error) {
	if s.Off {
		return []byte("false"), nil
	}
	return json.Marshal(s.Value)
}

package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Key is the standard ConfigKey implementation: a name, a default value, and
// an optional validator tag applied to loaded values.
//
// Keys are registered and compared by pointer, so each key must be created
// once and shared.
type Key[T any] struct {
	name        string
	def         T
	validateTag string
}

func NewKey[T any](name string, def T, validateTag string) *Key[T] {
	if name == "" {
		panic(fmt.Errorf("config key must have a name"))
	}
	return &Key[T]{name: name, def: def, validateTag: validateTag}
}

func (k *Key[T]) Name() string { return k.name }

// New returns the default value. Values are treated as read-only; callers
// must not mutate slices or maps they get back from the config layer.
func (k *Key[T]) New() T { return k.def }

// NewFrom converts a loosely-typed value decoded from YAML into the key's
// type, applying the key's validation tag.
func (k *Key[T]) NewFrom(value any) (T, error) {
	var out T
	// round-trip through YAML to coerce the decoded any-typed value
	b, err := yaml.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("invalid value for %q: %w", k.name, err)
	}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("invalid value for %q: %w", k.name, err)
	}
	if k.validateTag != "" {
		if err := validate.Var(out, k.validateTag); err != nil {
			return out, fmt.Errorf("invalid value for %q: %w", k.name, err)
		}
	}
	return out, nil
}

func (k *Key[T]) IsDefault(value T) bool {
	return reflect.DeepEqual(value, k.def)
}

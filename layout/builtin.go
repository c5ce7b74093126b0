package layout

import (
	"fmt"
	"sync"
)

// builtinFamilies lists the families shipped with the keyboard, in lookup order.
func builtinFamilies() []*Family {
	return []*Family{
		deQwertz(),
		frAzerty(),
		seQwerty(),
		seDvorak(),
		ruJcuken(),
		usQwerty(),
		usDvorak(),
	}
}

// RegisterBuiltins adds the shipped families to r.
func RegisterBuiltins(r *Registry) error {
	for _, f := range builtinFamilies() {
		if err := r.Register(f); err != nil {
			return fmt.Errorf("could not register builtin families: %w", err)
		}
	}

	return nil
}

// NewBuiltinRegistry returns a registry holding the shipped families that still
// accepts custom ones.
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		return nil, err
	}

	return r, nil
}

// Builtin returns the process-wide frozen registry of shipped families.
var Builtin = sync.OnceValue(func() *Registry {
	r, err := NewBuiltinRegistry()
	if err != nil {
		panic(err)
	}

	r.Freeze()

	return r
})

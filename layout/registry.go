package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dasdy/vkeymap/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultFamilyName is returned by non-strict lookups that miss.
const DefaultFamilyName = "us qwerty"

var (
	ErrDuplicateFamily = errors.New("layout family already registered")
	ErrFrozen          = errors.New("registry is frozen")
	ErrUnknownFamily   = errors.New("unknown layout family")
)

var logCtx = logging.PackageCtx("layout")

// Registry owns layout families for the process lifetime. Names are unique,
// compared case-insensitively. After Freeze the registry is read-only.
type Registry struct {
	lock     sync.RWMutex
	families *orderedmap.OrderedMap[string, *Family]
	frozen   bool
}

func NewRegistry() *Registry {
	return &Registry{
		families: orderedmap.New[string, *Family](),
	}
}

func (r *Registry) Register(f *Family) error {
	if f == nil {
		return fmt.Errorf("%w: nil family", ErrInvalidFamily)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.frozen {
		return fmt.Errorf("could not register %q: %w", f.Name(), ErrFrozen)
	}

	key := strings.ToLower(f.Name())
	if _, exists := r.families.Get(key); exists {
		return fmt.Errorf("could not register %q: %w", f.Name(), ErrDuplicateFamily)
	}

	r.families.Set(key, f)

	return nil
}

func (r *Registry) Freeze() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.frozen = true
}

// Find looks a family up by name. When nothing matches, strict lookups return nil
// and others fall back to the default family.
func (r *Registry) Find(name string, strict bool) *Family {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if f, ok := r.families.Get(strings.ToLower(name)); ok {
		return f
	}

	if strict {
		return nil
	}

	f, ok := r.families.Get(DefaultFamilyName)
	if !ok {
		// Only reachable with a registry lacking builtins.
		if oldest := r.families.Oldest(); oldest != nil {
			f = oldest.Value
		}
	}

	if f != nil {
		slog.WarnContext(logCtx, "Layout family not found, using default", "name", name, "default", f.Name())
	}

	return f
}

// Default returns the family used when no other is selected.
func (r *Registry) Default() *Family {
	return r.Find(DefaultFamilyName, false)
}

// Names lists family names in registration order.
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, r.families.Len())
	for pair := r.families.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Value.Name())
	}

	return names
}

// DefaultLanguage returns the default language of a family, or "" if unknown.
func (r *Registry) DefaultLanguage(name string) string {
	if f := r.Find(name, true); f != nil {
		return f.Info().DefaultLanguage
	}

	return ""
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.families.Len()
}

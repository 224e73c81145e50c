// Package recipe holds the named tasks the CLI exposes and the engine that
// resolves their ordering and runs them.
package recipe

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jig-dev/jig/internal"
)

// Recipe is a named, invocable task.
type Recipe struct {
	Name    string
	Summary string
	// Aliases are alternate command names, for recipes whose canonical name
	// replaced a toolchain-specific one.
	Aliases []string
	// Needs lists recipes that must run before this one, in the order given.
	Needs []string
	// Run executes the recipe body with the caller's forwarded arguments.
	// Aggregate recipes that only exist to sequence their Needs may leave it
	// nil.
	Run func(ctx context.Context, args []string) error
	// DefaultArgs are used when the caller provides no arguments.
	DefaultArgs []string
	// ForwardsArgs marks recipes that accept free-form arguments from the
	// command line.
	ForwardsArgs bool
}

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidName reports whether name is acceptable as a recipe name.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// Registry is an ordered collection of recipes.
type Registry struct {
	byName map[string]*Recipe
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Recipe)}
}

func (r *Registry) Add(rec Recipe) error {
	if !ValidName(rec.Name) {
		return fmt.Errorf("invalid recipe name %q", rec.Name)
	}
	if _, ok := r.byName[rec.Name]; ok {
		return fmt.Errorf("recipe %q already registered", rec.Name)
	}
	for _, a := range rec.Aliases {
		if !ValidName(a) {
			return fmt.Errorf("invalid recipe alias %q", a)
		}
	}
	r.byName[rec.Name] = &rec
	r.order = append(r.order, rec.Name)
	return nil
}

func (r *Registry) Get(name string) (*Recipe, bool) {
	rec, ok := r.byName[name]
	return rec, ok
}

// Recipes returns all recipes in registration order.
func (r *Registry) Recipes() []*Recipe {
	recs := make([]*Recipe, 0, len(r.order))
	for _, name := range r.order {
		recs = append(recs, r.byName[name])
	}
	return recs
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry the CLI serves.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a built-in recipe to the default registry. It panics on
// registration errors, which are always programmer mistakes.
func Register(rec Recipe) {
	internal.CheckCanCustomize()
	if err := defaultRegistry.Add(rec); err != nil {
		panic(err)
	}
}

package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/jig-dev/jig/internal/ctxlog"
)

// Plan resolves the execution order for the named recipe: its needs,
// transitively, followed by the recipe itself. Recipes with no ordering
// constraint between them keep the order their dependents declared.
func (r *Registry) Plan(name string) ([]*Recipe, error) {
	root, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown recipe %q", name)
	}

	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	// discovery order: depth-first from the target, following Needs in
	// declared order. used below to break topological-sort ties so aggregates
	// like `all` run their needs in the order they listed them.
	discovered := map[string]int{}
	var visit func(rec *Recipe) error
	visit = func(rec *Recipe) error {
		if _, ok := discovered[rec.Name]; ok {
			return nil
		}
		discovered[rec.Name] = len(discovered)
		if err := g.AddVertex(rec.Name); err != nil {
			return err
		}
		for _, need := range rec.Needs {
			dep, ok := r.byName[need]
			if !ok {
				return fmt.Errorf("recipe %q needs unknown recipe %q", rec.Name, need)
			}
			if err := visit(dep); err != nil {
				return err
			}
			err := g.AddEdge(need, rec.Name)
			if errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return fmt.Errorf("dependency cycle between recipes %q and %q", rec.Name, need)
			} else if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return err
			}
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	order, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return discovered[a] < discovered[b]
	})
	if err != nil {
		return nil, fmt.Errorf("resolving order for recipe %q: %w", name, err)
	}

	plan := make([]*Recipe, 0, len(order))
	for _, n := range order {
		plan = append(plan, r.byName[n])
	}
	return plan, nil
}

// Run executes the named recipe after its needs, stopping at the first
// failure. args are forwarded to the target recipe only; recipes run as a
// dependency get their default arguments.
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	plan, err := r.Plan(name)
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(ctx)
	for _, rec := range plan {
		if rec.Run == nil {
			continue
		}
		ra := args
		if rec.Name != name {
			ra = nil
		}
		if len(ra) == 0 {
			ra = rec.DefaultArgs
		}
		log.Debug("running recipe", "recipe", rec.Name, "args", ra)
		if err := rec.Run(ctx, ra); err != nil {
			return fmt.Errorf("recipe %s: %w", rec.Name, err)
		}
	}
	return nil
}

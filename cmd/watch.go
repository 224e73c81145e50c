package cmd

import (
	"context"
	"fmt"

	"github.com/jig-dev/jig/recipe"
	"github.com/jig-dev/jig/watch"
)

// registerWatchRecipe runs from Main, after the built-in recipes are in so
// the listing keeps a sensible order.
func registerWatchRecipe() {
	recipe.Register(recipe.Recipe{
		Name:         "watch",
		Summary:      "Re-run a recipe whenever files change",
		ForwardsArgs: true,
		DefaultArgs:  []string{"test"},
		Run:          runWatch,
	})
}

func runWatch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("watch takes a single recipe name, got %d args", len(args))
	}
	name := args[0]
	reg := recipe.Default()
	// validate the target before entering the loop
	if _, err := reg.Plan(name); err != nil {
		return err
	}
	return watch.Watch(ctx, ".", watch.OptionsFromConfig(), func(ctx context.Context) error {
		return reg.Run(ctx, name, nil)
	})
}

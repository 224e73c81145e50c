package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jig-dev/jig/recipe"
)

// the recipes every project gets, delegating to the detected toolchain
func registerRecipes() {
	recipe.Register(recipe.Recipe{
		Name:    "build",
		Summary: "Build the project",
		Run:     step(Toolchain.Build),
	})
	recipe.Register(recipe.Recipe{
		Name:    "test",
		Summary: "Run the test suite",
		Run:     step(Toolchain.Test),
	})
	recipe.Register(recipe.Recipe{
		Name:    "lint",
		Summary: "Lint across all targets and features",
		Aliases: []string{"clippy"},
		Run:     step(Toolchain.Lint),
	})
	recipe.Register(recipe.Recipe{
		Name:    "fmt",
		Summary: "Format the source tree",
		Run:     step(Toolchain.Fmt),
	})
	recipe.Register(recipe.Recipe{
		Name:    "fmt-check",
		Summary: "Check formatting without rewriting anything",
		Run: func(ctx context.Context, _ []string) error {
			tc, err := Detect(".")
			if err != nil {
				return err
			}
			return runFmtCheck(ctx, tc, os.Stdout)
		},
	})
	recipe.Register(recipe.Recipe{
		Name:    "install",
		Summary: "Install the project from the current path",
		Run:     step(Toolchain.Install),
	})
	recipe.Register(recipe.Recipe{
		Name:         "run",
		Summary:      "Run the project, forwarding any arguments",
		ForwardsArgs: true,
		Run: func(ctx context.Context, args []string) error {
			tc, err := Detect(".")
			if err != nil {
				return err
			}
			return tc.Run(ctx, args, Options{})
		},
	})
	recipe.Register(recipe.Recipe{
		Name:    "all",
		Summary: "Run build, test, lint, and fmt-check",
		Needs:   []string{"build", "test", "lint", "fmt-check"},
	})
}

// runFmtCheck runs the formatter check, then prints the confirmation line
// whether or not the check passed. The check's own status still decides the
// exit code.
func runFmtCheck(ctx context.Context, tc Toolchain, out io.Writer) error {
	err := tc.FmtCheck(ctx, Options{})
	fmt.Fprintln(out, "fmt check complete")
	return err
}

func step(fn func(Toolchain, context.Context, Options) error) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error {
		tc, err := Detect(".")
		if err != nil {
			return err
		}
		return fn(tc, ctx, Options{})
	}
}

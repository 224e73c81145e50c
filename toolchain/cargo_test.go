package toolchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureExec records the argv each step would run instead of executing it.
func captureExec(argvs *[][]string) execFunc {
	return func(_ context.Context, _ string, argv []string, _ Options) error {
		*argvs = append(*argvs, argv)
		return nil
	}
}

func Test_cargoToolchain_argv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		channel  string
		invoke   func(c *cargoToolchain) error
		wantArgv []string
	}{
		{
			name:     "build",
			invoke:   func(c *cargoToolchain) error { return c.Build(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "build"},
		},
		{
			name:     "test",
			invoke:   func(c *cargoToolchain) error { return c.Test(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "test"},
		},
		{
			name:     "lint covers all targets and features",
			invoke:   func(c *cargoToolchain) error { return c.Lint(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "clippy", "--all-targets", "--all-features"},
		},
		{
			name:     "fmt pinned to channel",
			channel:  "nightly",
			invoke:   func(c *cargoToolchain) error { return c.Fmt(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "+nightly", "fmt"},
		},
		{
			name:     "fmt without channel",
			invoke:   func(c *cargoToolchain) error { return c.Fmt(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "fmt"},
		},
		{
			name:     "fmt-check appends check flag",
			channel:  "nightly",
			invoke:   func(c *cargoToolchain) error { return c.FmtCheck(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "+nightly", "fmt", "--check"},
		},
		{
			name:     "install from current path",
			invoke:   func(c *cargoToolchain) error { return c.Install(context.Background(), Options{}) },
			wantArgv: []string{"cargo", "install", "--path", "."},
		},
		{
			name: "run forwards args after separator",
			invoke: func(c *cargoToolchain) error {
				return c.Run(context.Background(), []string{"a", "b"}, Options{})
			},
			wantArgv: []string{"cargo", "run", "--", "a", "b"},
		},
		{
			name: "run with no args",
			invoke: func(c *cargoToolchain) error {
				return c.Run(context.Background(), nil, Options{})
			},
			wantArgv: []string{"cargo", "run", "--"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var argvs [][]string
			c := &cargoToolchain{fmtChannel: tt.channel, exec: captureExec(&argvs)}
			require.NoError(t, tt.invoke(c))
			require.Len(t, argvs, 1)
			assert.Equal(t, tt.wantArgv, argvs[0])
		})
	}
}

func Test_cargoToolchain_Run_interactive(t *testing.T) {
	t.Parallel()
	var gotOpts Options
	c := &cargoToolchain{exec: func(_ context.Context, _ string, _ []string, opts Options) error {
		gotOpts = opts
		return nil
	}}
	require.NoError(t, c.Run(context.Background(), nil, Options{}))
	assert.True(t, gotOpts.Interactive, "run should connect stdin to the child")
}

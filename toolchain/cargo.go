package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

func detectCargo(root string, s Settings) (Toolchain, error) {
	if _, err := os.Stat(filepath.Join(root, "Cargo.toml")); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // no Cargo.toml, not a cargo project
		}
		return nil, err
	}
	return &cargoToolchain{fmtChannel: s.FmtChannel, exec: runTool}, nil
}

type cargoToolchain struct {
	// fmtChannel pins fmt to `cargo +<channel> fmt`; empty runs plain
	// `cargo fmt`.
	fmtChannel string
	exec       execFunc
}

func (c *cargoToolchain) Name() string { return "cargo" }

func (c *cargoToolchain) Build(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo build", []string{"cargo", "build"}, opts)
}

func (c *cargoToolchain) Test(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo test", []string{"cargo", "test"}, opts)
}

func (c *cargoToolchain) Lint(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo clippy",
		[]string{"cargo", "clippy", "--all-targets", "--all-features"}, opts)
}

func (c *cargoToolchain) fmtArgv(check bool) []string {
	argv := []string{"cargo"}
	if c.fmtChannel != "" {
		argv = append(argv, "+"+c.fmtChannel)
	}
	argv = append(argv, "fmt")
	if check {
		argv = append(argv, "--check")
	}
	return argv
}

func (c *cargoToolchain) Fmt(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo fmt", c.fmtArgv(false), opts)
}

func (c *cargoToolchain) FmtCheck(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo fmt --check", c.fmtArgv(true), opts)
}

func (c *cargoToolchain) Install(ctx context.Context, opts Options) error {
	return c.exec(ctx, "cargo install",
		[]string{"cargo", "install", "--path", "."}, opts)
}

func (c *cargoToolchain) Run(ctx context.Context, args []string, opts Options) error {
	opts.Interactive = true
	// the -- keeps forwarded args out of cargo's own flag parsing
	argv := append([]string{"cargo", "run", "--"}, args...)
	return c.exec(ctx, "cargo run", argv, opts)
}

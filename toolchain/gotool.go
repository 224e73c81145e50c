package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jig-dev/jig/shx"
)

func detectGo(root string, _ Settings) (Toolchain, error) {
	// TODO: recognize go.work without a go.mod in the root
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // no go.mod, not a go project
		}
		return nil, err
	}
	return &goToolchain{exec: runTool}, nil
}

type goToolchain struct {
	exec execFunc
}

func (g *goToolchain) Name() string { return "go" }

func (g *goToolchain) Build(ctx context.Context, opts Options) error {
	return g.exec(ctx, "go build", []string{"go", "build", "./..."}, opts)
}

func (g *goToolchain) Test(ctx context.Context, opts Options) error {
	return g.exec(ctx, "go test", []string{"go", "test", "./..."}, opts)
}

func (g *goToolchain) Lint(ctx context.Context, opts Options) error {
	return g.exec(ctx, "go vet", []string{"go", "vet", "./..."}, opts)
}

func (g *goToolchain) Fmt(ctx context.Context, opts Options) error {
	return g.exec(ctx, "gofmt", []string{"gofmt", "-w", "."}, opts)
}

// FmtCheck runs gofmt in list mode. gofmt exits zero even when files need
// formatting, so the check fails on any listed file instead of the exit code.
func (g *goToolchain) FmtCheck(ctx context.Context, opts Options) error {
	shOpts := []shx.Option{shx.CaptureOutput(), shx.PassStderr()}
	if opts.Dir != "" {
		shOpts = append(shOpts, shx.WithCwd(opts.Dir))
	}
	res, err := shx.Run(ctx, []string{"gofmt", "-l", "."}, shOpts...)
	if err != nil {
		return fmt.Errorf("failed to start gofmt: %w", err)
	}
	defer res.Close() //nolint:errcheck
	if err := res.Err(); err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	out, err := io.ReadAll(res.Stdout())
	if err != nil {
		return fmt.Errorf("error reading gofmt output: %w", err)
	}
	files := parseUnformatted(string(out))
	if len(files) == 0 {
		return nil
	}
	for _, f := range files {
		fmt.Fprintln(os.Stderr, f)
	}
	return fmt.Errorf("gofmt reported %d unformatted file(s)", len(files))
}

func parseUnformatted(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files
}

func (g *goToolchain) Install(ctx context.Context, opts Options) error {
	return g.exec(ctx, "go install", []string{"go", "install", "."}, opts)
}

func (g *goToolchain) Run(ctx context.Context, args []string, opts Options) error {
	opts.Interactive = true
	argv := append([]string{"go", "run", "."}, args...)
	return g.exec(ctx, "go run", argv, opts)
}

// Package runfile executes a standalone source file, choosing how by its
// extension. Compiled languages build into a temp dir that is removed
// afterwards.
package runfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jig-dev/jig/shx"
)

// Exec runs filename, forwarding args to the resulting process.
func Exec(ctx context.Context, filename string, args []string) error {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch ext {
	case "go":
		return execCompiled(ctx, filename, args, func(out string) []string {
			return []string{"go", "build", "-o", out, filename}
		})
	case "rs":
		return execCompiled(ctx, filename, args, func(out string) []string {
			return []string{"rustc", filename, "-o", out}
		})
	case "py":
		return execDirect(ctx, append([]string{"python3", filename}, args...))
	case "":
		return fmt.Errorf("cannot determine file type of %q", filename)
	default:
		return fmt.Errorf("unsupported file type %q", ext)
	}
}

// binaryName is the output name a compiled file builds to.
func binaryName(filename string) (string, error) {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "", fmt.Errorf("cannot derive an output name from %q", filename)
	}
	return stem, nil
}

func execCompiled(ctx context.Context, filename string, args []string, compileArgv func(out string) []string) error {
	stem, err := binaryName(filename)
	if err != nil {
		return err
	}
	tmp, err := os.MkdirTemp("", "jig-exec-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp) //nolint:errcheck
	out := filepath.Join(tmp, stem)

	res, err := shx.Run(ctx, compileArgv(out), shx.PassOutput())
	if err != nil {
		return fmt.Errorf("failed to start compiler for %s: %w", filename, err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("failed to compile %s: %w", filename, err)
	}

	return execDirect(ctx, append([]string{out}, args...))
}

func execDirect(ctx context.Context, argv []string) error {
	res, err := shx.Run(ctx, argv, shx.PassStdio())
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("%s failed: %w", filepath.Base(argv[0]), err)
	}
	return nil
}

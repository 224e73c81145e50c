// Package toolchain detects and drives the external build toolchain that the
// built-in recipes delegate to.
package toolchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/jig-dev/jig/config"
	"github.com/jig-dev/jig/internal"
	"github.com/jig-dev/jig/shx"
)

// Toolchain is one external build system, with a method per workflow step.
type Toolchain interface {
	Name() string
	Build(ctx context.Context, opts Options) error
	Test(ctx context.Context, opts Options) error
	Lint(ctx context.Context, opts Options) error
	Fmt(ctx context.Context, opts Options) error
	FmtCheck(ctx context.Context, opts Options) error
	Install(ctx context.Context, opts Options) error
	Run(ctx context.Context, args []string, opts Options) error
}

type Options struct {
	// Dir is the directory the toolchain operates in; empty means the current
	// directory.
	Dir string
	// Interactive additionally connects the child's stdin to ours, for steps
	// that launch the project's own binary.
	Interactive bool
}

func (o Options) ShellOpts() []shx.Option {
	var opts []shx.Option
	if o.Interactive {
		opts = append(opts, shx.PassStdio())
	} else {
		opts = append(opts, shx.PassOutput())
	}
	if o.Dir != "" {
		opts = append(opts, shx.WithCwd(o.Dir))
	}
	return opts
}

// Settings are the config-derived knobs detectors bake into the toolchains
// they produce. Kept separate from the config layer so detection stays pure.
type Settings struct {
	// FmtChannel pins the cargo formatter to a named toolchain channel. Empty
	// uses the active channel.
	FmtChannel string
}

// Detector probes a directory and returns a Toolchain if the directory is a
// project it can drive, or nil if not.
type Detector func(root string, s Settings) (Toolchain, error)

type strategy struct {
	name   string
	detect Detector
}

var strategies []strategy

func registerStrategy(name string, det Detector) {
	for _, s := range strategies {
		if s.name == name {
			panic(fmt.Errorf("toolchain strategy %q already registered", name))
		}
	}
	strategies = append(strategies, strategy{name: name, detect: det})
}

var (
	// KeyToolchain forces a specific toolchain instead of auto-detection.
	KeyToolchain = config.NewKey("toolchain", "auto", "oneof=auto cargo go")
	// KeyFmtChannel is the toolchain channel the cargo formatter is pinned to.
	KeyFmtChannel = config.NewKey("fmt-channel", "nightly", "")
)

// Configure registers the toolchain strategies, their config keys, and the
// built-in recipes. Call it from main before cmd.Main().
var Configure = sync.OnceFunc(func() {
	internal.CheckCanCustomize()
	config.AddKey(KeyToolchain)
	config.AddKey(KeyFmtChannel)
	registerStrategy("cargo", detectCargo)
	registerStrategy("go", detectGo)
	registerRecipes()
})

// Detect finds the toolchain for root, honoring the config override.
func Detect(root string) (Toolchain, error) {
	s := Settings{FmtChannel: config.Get(KeyFmtChannel)}
	return detect(root, s, config.Get(KeyToolchain))
}

func detect(root string, s Settings, forced string) (Toolchain, error) {
	if forced != "" && forced != "auto" {
		for _, st := range strategies {
			if st.name != forced {
				continue
			}
			tc, err := st.detect(root, s)
			if err != nil {
				return nil, fmt.Errorf("error probing toolchain %q in %s: %w", forced, root, err)
			} else if tc == nil {
				return nil, fmt.Errorf("toolchain %q is not usable in %s", forced, root)
			}
			return tc, nil
		}
		return nil, fmt.Errorf("unknown toolchain %q", forced)
	}
	for _, st := range strategies {
		tc, err := st.detect(root, s)
		if err != nil {
			return nil, fmt.Errorf("error probing toolchain %q in %s: %w", st.name, root, err)
		}
		if tc != nil {
			return tc, nil
		}
	}
	return nil, fmt.Errorf("no toolchain detected in %s", root)
}

// execFunc runs one toolchain command. Toolchains hold it as a field so tests
// can observe the argv without executing anything.
type execFunc func(ctx context.Context, name string, argv []string, opts Options) error

func runTool(ctx context.Context, name string, argv []string, opts Options) error {
	res, err := shx.Run(ctx, argv, opts.ShellOpts()...)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

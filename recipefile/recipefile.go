// Package recipefile loads project-local recipes from a jig.hcl file in the
// project root, letting a repo extend the built-in recipe set without
// touching Go code.
package recipefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/jig-dev/jig/internal/ctxlog"
	"github.com/jig-dev/jig/recipe"
	"github.com/jig-dev/jig/shx"
)

// FileName is the project recipe file looked up in the project root.
const FileName = "jig.hcl"

// File is the decoded top-level structure of a project recipe file.
type File struct {
	Recipes []*Block `hcl:"recipe,block"`
}

// Block is one declared recipe.
type Block struct {
	Name    string            `hcl:"name,label"`
	Summary string            `hcl:"summary,optional"`
	Needs   []string          `hcl:"needs,optional"`
	Command []string          `hcl:"command" validate:"required,min=1,dive,required"`
	Dir     string            `hcl:"dir,optional"`
	Env     map[string]string `hcl:"env,optional"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses root/jig.hcl. A missing file is not an error; it returns an
// empty File.
func Load(ctx context.Context, root string) (*File, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, err
	}
	return loadFile(ctx, path, root)
}

func loadFile(ctx context.Context, path, root string) (*File, error) {
	ctxlog.FromContext(ctx).Debug("loading project recipes", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"root": cty.StringVal(absRoot),
		},
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	for _, b := range f.Recipes {
		if !recipe.ValidName(b.Name) {
			return nil, fmt.Errorf("%s: invalid recipe name %q", path, b.Name)
		}
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("%s: recipe %q: %w", path, b.Name, err)
		}
	}
	return &f, nil
}

// Register adds the file's recipes to the registry. Project recipes may not
// shadow recipes that are already registered.
func (f *File) Register(reg *recipe.Registry, root string) error {
	for _, b := range f.Recipes {
		if _, ok := reg.Get(b.Name); ok {
			return fmt.Errorf("project recipe %q shadows a built-in recipe", b.Name)
		}
		if err := reg.Add(f.toRecipe(b, root)); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) toRecipe(b *Block, root string) recipe.Recipe {
	dir := b.Dir
	if dir == "" {
		dir = root
	} else if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return recipe.Recipe{
		Name:         b.Name,
		Summary:      b.Summary,
		Needs:        b.Needs,
		ForwardsArgs: true,
		Run: func(ctx context.Context, args []string) error {
			argv := append(append([]string{}, b.Command...), args...)
			opts := []shx.Option{shx.PassStdio(), shx.WithCwd(dir)}
			for k, v := range b.Env {
				opts = append(opts, shx.WithEnv(k, v))
			}
			res, err := shx.Run(ctx, argv, opts...)
			if err != nil {
				return fmt.Errorf("failed to start %s: %w", argv[0], err)
			}
			return res.Err()
		},
	}
}

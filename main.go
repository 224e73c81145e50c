package main

import (
	"github.com/jig-dev/jig/cmd"
	"github.com/jig-dev/jig/toolchain"
	"github.com/jig-dev/jig/watch"
)

// Wrappers that want custom toolchains, recipes, or commands should build
// their own main around cmd.Main; this one enables the stock set.
func main() {
	toolchain.Configure()
	watch.Configure()
	cmd.Main()
}

package internal

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
)

var appName = "jig"

// the app name is read very early in startup (config paths, help text), so it
// gets its own lockdown latch independent of the main one
var appNameLocked atomic.Bool

// AppName is what the app calls itself in help output and config paths. When
// customizing, overwrite it via SetAppName before calling Main().
func AppName() string {
	// once observed it cannot be changed
	appNameLocked.Store(true)
	return appName
}

func SetAppName(name string) {
	CheckCanCustomize()
	if appNameLocked.Load() {
		panic(fmt.Errorf("app name is locked"))
	}
	if name == "" {
		panic(fmt.Errorf("app name must not be empty"))
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		panic(fmt.Errorf("app name must not contain whitespace"))
	}
	appName = name
}

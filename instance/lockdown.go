package instance

import "github.com/jig-dev/jig/internal"

// re-exports of some internal functions that we want to be accessible. the
// "original" versions are hidden so that only the app startup path can flip
// the lockdown latch.

// CheckCanCustomize panics if customizations have been locked down at this
// point in the app startup process.
//
// Use this as a guard in functions that register customizations to ensure
// they are not called from a place where they would be ineffectual.
func CheckCanCustomize() {
	internal.CheckCanCustomize()
}

// CheckLockedDown panics if customizations have not been locked down at this
// point in the app startup process.
//
// Use this as a guard in functions that put customizations into effect, so
// they cannot run while later modifications are still possible.
func CheckLockedDown() {
	internal.CheckLockedDown()
}

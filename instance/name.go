package instance

import "github.com/jig-dev/jig/internal"

// AppName is what the binary calls itself. Wrappers that embed jig can rename
// it with SetAppName before calling Main().
func AppName() string {
	return internal.AppName()
}

func SetAppName(name string) {
	internal.SetAppName(name)
}

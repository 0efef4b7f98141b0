package collectors

import "runtime"

// Supported reports whether the host platform has the OS facilities the
// collectors and launchers require.
func Supported() bool {
	return runtime.GOOS == "windows"
}

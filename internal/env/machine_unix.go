//go:build unix

package env

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// hostMachine returns the hardware name reported by uname(2).
func hostMachine() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	if m := unix.ByteSliceToString(uts.Machine[:]); m != "" {
		return m
	}
	return runtime.GOARCH
}

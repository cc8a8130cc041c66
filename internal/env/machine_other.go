//go:build !unix

package env

import "runtime"

func hostMachine() string {
	return runtime.GOARCH
}

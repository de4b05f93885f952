//go:build !unix

package cmd

import "os"

func terminalSize(_ *os.File) (width, height int, ok bool) {
	return 0, 0, false
}

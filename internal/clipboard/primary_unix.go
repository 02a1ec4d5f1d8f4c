//go:build freebsd || linux || netbsd || openbsd || solaris || dragonfly

package clipboard

import "github.com/atotto/clipboard"

func writePrimary(text string) error {
	clipboard.Primary = true
	defer func() { clipboard.Primary = false }()
	return clipboard.WriteAll(text)
}

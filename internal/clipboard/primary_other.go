//go:build !(freebsd || linux || netbsd || openbsd || solaris || dragonfly)

package clipboard

// The primary selection only exists on X11 and Wayland
func writePrimary(string) error {
	return ErrUnsupportedTarget
}

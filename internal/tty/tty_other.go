//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package tty

func isTerminal(fd int) bool {
	// No termios here; treat every file as non-interactive so prompts are
	// never printed.
	return false
}

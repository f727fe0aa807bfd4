package mdp

import "os"

// DetectColorSupport reports whether the current environment is likely
// to display ANSI color correctly. NO_COLOR always wins, then
// CLICOLOR_FORCE, then the terminal type.
func DetectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	switch os.Getenv("TERM") {
	case "", "dumb":
		return false
	}
	return true
}

// Package openers reveals filesystem paths in the desktop file manager.
package openers

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// runCommand executes an opener binary; tests may override.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// openerCommands lists the file-manager launchers to try per platform, in
// order. On Linux xdg-open delegates to the session's file manager; nautilus
// is the fallback for sessions without a working xdg association.
func openerCommands(goos string) [][]string {
	switch goos {
	case "darwin":
		return [][]string{{"open"}}
	case "windows":
		return [][]string{{"explorer"}}
	default:
		return [][]string{{"xdg-open"}, {"nautilus"}}
	}
}

// Reveal opens the given path in the desktop file manager. The path must
// exist; launcher failures fall through to the next candidate. The error is
// meant for the user, the discovery result itself is unaffected.
func Reveal(path string) error {
	return reveal(path, openerCommands(runtime.GOOS))
}

func reveal(path string, commands [][]string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("folder does not exist: %s", path)
	}

	var lastErr error
	for _, cmd := range commands {
		args := append(cmd[1:], path)
		if err := runCommand(cmd[0], args...); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("could not open folder %s: %w", path, lastErr)
}

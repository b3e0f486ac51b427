package report

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ResolveColor turns a --color mode into a yes/no decision.
// "auto" enables color only when stdout is a terminal and NO_COLOR is unset.
func ResolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

var logo = []string{
	`              _ _      _   _                 _   `,
	` __ __ ____ _| | |___| |_| |_  _  _ _ _  ___| |_ `,
	` \ V  V / _' | | / -_)  _| ' \| || | ' \|___|  _|`,
	`  \_/\_/\__,_|_|_\___|\__|_||_|\_,_|_||_|     \__|`,
}

var logoColors = []string{"#fbbf24", "#f59e0b", "#d97706", "#b45309"}

// printLogo writes the ASCII logo with an amber gradient. Nothing is printed
// on terminals without color support.
func printLogo(out *termenv.Output) {
	if out.Profile == termenv.Ascii {
		return
	}
	fmt.Fprintln(out)
	for i, line := range logo {
		fmt.Fprintln(out, out.String(line).Foreground(out.Color(logoColors[i])))
	}
}

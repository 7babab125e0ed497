// Command cpfvariant validates, formats and searches Brazilian CPF numbers.
//
// Usage:
//
//	cpfvariant search 529.982.247-25
//	cpfvariant search 529.982.247-25 --output json --max-level 2
//	cpfvariant search 529.982.247-25 --config cpfvariant.yaml --trace
//	cpfvariant validate 52998224725
//	cpfvariant format 52998224725
//
// The config file is YAML:
//
//	max_level: 3        # 1..3
//	output: text        # text | json | yaml
//	color: auto         # auto | always | never
//	log_level: warn     # debug | info | warn | error
//	trace: false
//	metrics: false
//
// Any error is printed to stderr and the exit status is 1.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6464"))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		msg := "error: " + err.Error()
		if useColor(ColorAuto, os.Stderr) {
			msg = errorStyle.Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

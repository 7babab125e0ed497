package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/cpfvariant/variant"
)

// Palette
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorOK      = lipgloss.Color("#64FF64")
	colorVariant = lipgloss.Color("#96FF96")
	colorChanged = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#969696")
	colorError   = lipgloss.Color("#FF6464")
)

// styler renders one or more strings, joined by a space.
type styler func(strs ...string) string

func plain(strs ...string) string { return strings.Join(strs, " ") }

type palette struct {
	title, ok, variant, changed, muted, err styler
}

// newPalette returns identity stylers when color is off. When color is on
// the ANSI profile is forced, so styling survives pipes the caller chose
// to color.
func newPalette(w io.Writer, color bool) palette {
	if !color {
		return palette{plain, plain, plain, plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return palette{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle).Render,
		ok:      r.NewStyle().Foreground(colorOK).Render,
		variant: r.NewStyle().Foreground(colorVariant).Render,
		changed: r.NewStyle().Bold(true).Underline(true).Foreground(colorChanged).Render,
		muted:   r.NewStyle().Foreground(colorMuted).Render,
		err:     r.NewStyle().Foreground(colorError).Render,
	}
}

// DifferenceLabel describes a digit-difference count.
func DifferenceLabel(n int) string {
	if n == 1 {
		return "(1 digit different)"
	}

	return fmt.Sprintf("(%d digits different)", n)
}

// WriteText writes a human-readable listing of out.
func WriteText(w io.Writer, out variant.Outcome, color bool) error {
	p := newPalette(w, color)
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", p.muted("original:"), out.Original)
	fmt.Fprintf(&b, "%s\n", p.title(fmt.Sprintf("Valid variations (%d)", len(out.Entries))))
	if len(out.Entries) == 0 {
		fmt.Fprintf(&b, "  %s\n", p.muted("no results"))
	}
	for _, e := range out.Entries {
		fmt.Fprintf(&b, "  %s %s %s\n",
			p.ok("✓"),
			highlight(out.Original, e.Formatted, p.variant, p.changed),
			p.muted(DifferenceLabel(e.Differences)),
		)
	}
	if out.Found() {
		fmt.Fprintf(&b, "%s\n", p.ok(out.Summary()))
	} else {
		fmt.Fprintf(&b, "%s\n", p.err(out.Summary()))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Highlight renders variant with the characters that differ from original
// at the same position passed through changed, and runs of equal
// characters through same. Characters of variant past the end of original
// count as changed.
func Highlight(original, variant string, same, changed func(...string) string) string {
	return highlight(original, variant, same, changed)
}

func highlight(original, v string, same, changed styler) string {
	var b strings.Builder
	for start := 0; start < len(v); {
		diff := differsAt(original, v, start)
		end := start + 1
		for end < len(v) && differsAt(original, v, end) == diff {
			end++
		}
		if diff {
			b.WriteString(changed(v[start:end]))
		} else {
			b.WriteString(same(v[start:end]))
		}
		start = end
	}

	return b.String()
}

func differsAt(original, v string, i int) bool {
	return i >= len(original) || original[i] != v[i]
}

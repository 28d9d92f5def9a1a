package cli

import (
	"os"

	"github.com/TwiN/go-color"
	"github.com/mattn/go-isatty"

	"github.com/Jaesu26/pairrot-solver/internal/hint"
)

var kindColors = [hint.NumKinds]string{
	hint.NoMatch:               color.Gray,
	hint.IndirectMatch:         color.Yellow,
	hint.SingleMatch:           color.Purple,
	hint.MultiMatchDiffInitial: color.Cyan,
	hint.MultiMatchSameInitial: color.Blue,
	hint.ExactMatch:            color.Green,
}

// setupColor enables colored text output only on a terminal, unless NO_COLOR is set.
func setupColor(disabled bool) {
	color.Toggle(!disabled && os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd()))
}

// paintKind renders a hint token in its color.
func paintKind(k hint.Kind) string {
	if !k.IsValid() {
		return k.String()
	}
	return color.Ize(kindColors[k], k.String())
}

// paintToken colors a stored hint token; unknown tokens are returned as is.
func paintToken(s string) string {
	k, err := hint.ParseKind(s)
	if err != nil {
		return s
	}
	return paintKind(k)
}

package cli

import (
	"strings"
	"testing"

	"github.com/TwiN/go-color"

	"github.com/Jaesu26/pairrot-solver/internal/hint"
)

func TestPaintKind(t *testing.T) {
	color.Toggle(false)
	if got := paintKind(hint.ExactMatch); got != "당근" {
		t.Errorf("paintKind(ExactMatch) = %q with color off", got)
	}
	if got := paintToken("Carrot"); got != "Carrot" {
		t.Errorf("paintToken(Carrot) = %q, want unchanged", got)
	}

	color.Toggle(true)
	defer color.Toggle(false)
	got := paintToken("사과")
	if !strings.HasPrefix(got, color.Gray) || !strings.Contains(got, "사과") {
		t.Errorf("paintToken(사과) = %q, want gray token", got)
	}
}

package pcg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDotLabelsStartAndEnd(t *testing.T) {
	cg := buildLineCG(t)
	out := ToDot(cg, "")
	assert.Contains(t, out, `label="Start"`)
	assert.Contains(t, out, `label="End"`)
}

func TestToDotAcceptingNodeIsFilledDoubleCircle(t *testing.T) {
	cg := buildLineCG(t)
	out := ToDot(cg, "")
	assert.True(t, strings.Contains(out, "shape=doublecircle"))
	assert.True(t, strings.Contains(out, "style=filled"))
	assert.True(t, strings.Contains(out, "fillcolor=lightyellow"))
	assert.True(t, strings.Contains(out, "Accept="))
}

func TestToDotEmitsEveryEdge(t *testing.T) {
	cg := buildLineCG(t)
	out := ToDot(cg, "")
	for _, id := range cg.G.Vertices() {
		for _, to := range cg.G.Out(id) {
			assert.Contains(t, out, fmt.Sprintf("%d -> %d;", id, to))
		}
	}
}

func TestToDotIncludesGraphLabelWhenProvided(t *testing.T) {
	cg := buildLineCG(t)
	out := ToDot(cg, "policy X")
	assert.Contains(t, out, `label="policy X";`)
}

func TestToDotAcceptLabelUsesSingleNewlineEscape(t *testing.T) {
	cg := buildLineCG(t)
	out := ToDot(cg, "")
	assert.Contains(t, out, "\\nAccept=", "expected the Graphviz line-break escape \\n, produced by %q quoting a real newline")
	assert.NotContains(t, out, "\\\\nAccept=", "a doubled backslash means the source used a literal backslash-n instead of a real newline before %q quoting")
}

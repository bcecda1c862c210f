package pcg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

// ToDot renders t as Graphviz DOT. Start and End are labeled "Start" and
// "End"; a non-accepting real state is labeled "state, location"; an
// accepting state additionally carries its Accept set on a second line and
// is drawn as a filled double circle.
func ToDot(t *T, policyInfo string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pcg {\n")
	if policyInfo != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", policyInfo)
	}

	ids := t.G.Vertices()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		v := t.mustState(id)
		buf.WriteString(dotNode(id, v))
	}
	for _, id := range ids {
		outs := append([]uint32{}, t.G.Out(id)...)
		sort.Slice(outs, func(i, j int) bool { return outs[i] < outs[j] })
		for _, to := range outs {
			fmt.Fprintf(&buf, "  %d -> %d;\n", id, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotNode(id uint32, v CgState) string {
	switch {
	case v.Node.Typ == topology.KindStart:
		return fmt.Sprintf("  %d [label=%q];\n", id, "Start")
	case v.Node.Typ == topology.KindEnd:
		return fmt.Sprintf("  %d [label=%q];\n", id, "End")
	case !v.Accept.IsEmpty():
		label := fmt.Sprintf("%d, %s\nAccept=%s", v.State, v.Node.Loc, v.Accept.String())
		return fmt.Sprintf("  %d [label=%q, shape=doublecircle, style=filled, fillcolor=lightyellow];\n", id, label)
	default:
		label := fmt.Sprintf("%d, %s", v.State, v.Node.Loc)
		return fmt.Sprintf("  %d [label=%q];\n", id, label)
	}
}

// GeneratePNG writes ToDot(t, policyInfo) to file+".dot" and shells out to the
// system "dot" binary to render file+".png". Never called from the
// builder/minimize/consistency/regex/failure hot path; this is strictly a
// CLI-driven side channel.
func GeneratePNG(t *T, policyInfo string, file string, logger logging.Logger) error {
	log := logging.Scope(logger, "pcg.dot")

	dotPath := file + ".dot"
	pngPath := file + ".png"

	if err := os.WriteFile(dotPath, []byte(ToDot(t, policyInfo)), 0o644); err != nil {
		return fmt.Errorf("pcg: writing %s: %w", dotPath, err)
	}

	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pcg: running dot on %s: %w (%s)", dotPath, err, out)
	}

	log.Info("png generated", logging.String("file", pngPath))
	return nil
}

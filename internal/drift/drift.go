package drift

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/marsprecedents/internal/corpus"
)

// Lines returns a line diff from want to got: removed lines prefixed with
// "-", added lines with "+". Unchanged lines are omitted. An empty result
// means the inputs are identical.
func Lines(want, got []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(strings.TrimSuffix(line, "\n"))
			out.WriteString("\n")
		}
	}
	return out.String()
}

// Changed returns the ids of cases whose header or record differs between
// want and got, in want's order, followed by ids only present in got.
func Changed(want, got []corpus.Pair) []string {
	byID := make(map[string]corpus.Pair, len(got))
	for _, p := range got {
		byID[p.Header.Index.ID] = p
	}

	var ids []string
	seen := make(map[string]bool, len(want))
	for _, w := range want {
		id := w.Header.Index.ID
		seen[id] = true
		g, ok := byID[id]
		if !ok || g != w {
			ids = append(ids, id)
		}
	}
	for _, g := range got {
		if id := g.Header.Index.ID; !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

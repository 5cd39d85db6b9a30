package btree

import (
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders a Btree level by level, coloring each depth
// differently so node boundaries stay readable on a terminal.
type Visualizer struct {
	Tree *Btree
}

var levelColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

// Visualize returns a multi-line drawing of the tree with one line per
// level, each node shown as a bracketed key list.
func (v *Visualizer) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return "(empty)"
	}

	var sb strings.Builder
	level := []*node{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		paint := levelColors[depth%len(levelColors)]
		var next []*node
		for pos, n := range level {
			if pos > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(paint.Sprint(formatNode(n)))
			next = append(next, n.children...)
		}
		level = next
		if len(level) > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func formatNode(n *node) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for pos, it := range n.items {
		if pos > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(it.key)
	}
	sb.WriteByte(']')
	return sb.String()
}

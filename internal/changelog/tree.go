package changelog

import (
	"strings"
)

// NoteNode is one bullet note and the notes nested below it. Text may span
// several lines; continuation lines are aligned under the first.
type NoteNode struct {
	Text     string
	Children []*NoteNode
}

// BuildNoteTree arranges notes by depth. A note is attached to the closest
// earlier note one level up; depths that skip a level are clamped.
func BuildNoteTree(notes []string, depths []int) []*NoteNode {
	var roots []*NoteNode
	var path []*NoteNode
	for i, note := range notes {
		depth := 0
		if i < len(depths) {
			depth = depths[i]
		}
		depth = max(0, min(depth, len(path)))

		node := &NoteNode{Text: note}
		path = append(path[:depth], node)
		if depth == 0 {
			roots = append(roots, node)
			continue
		}
		parent := path[depth-1]
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// BulletTree renders a note tree as a Markdown bullet list.
type BulletTree struct {
	Nodes  []*NoteNode
	Bullet string // "-" when empty
	Indent int    // spaces per level; values below 1 mean 2
}

// Lines returns the rendered list, one line per element.
func (t BulletTree) Lines() []string {
	bullet := t.Bullet
	if bullet == "" {
		bullet = "-"
	}
	indent := t.Indent
	if indent < 1 {
		indent = 2
	}

	var lines []string
	var walk func(nodes []*NoteNode, depth int)
	walk = func(nodes []*NoteNode, depth int) {
		for _, n := range nodes {
			lines = append(lines, bulletLines(n.Text, depth, indent, bullet)...)
			walk(n.Children, depth+1)
		}
	}
	walk(t.Nodes, 1)
	return lines
}

func (t BulletTree) String() string {
	return strings.Join(t.Lines(), "\n")
}

// bulletLines renders text at depth (1 for top level). An indent of 1 packs
// the bullet against the text.
func bulletLines(text string, depth, indent int, bullet string) []string {
	if text == "" {
		return nil
	}

	gap, space := indent-2, " "
	if indent == 1 {
		gap, space = 0, ""
	}
	initial := strings.Repeat(" ", (depth-1)*indent+gap) + bullet + space
	subsequent := strings.Repeat(" ", depth*indent)

	parts := strings.Split(text, "\n")
	lines := make([]string, len(parts))
	lines[0] = initial + parts[0]
	for i, part := range parts[1:] {
		lines[i+1] = subsequent + part
	}
	return lines
}

// indentWidth measures the leading whitespace of line, a tab counting as
// four columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

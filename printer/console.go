package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Config controls console output of trees.
type Config struct {
	ShowValues    bool     // print values next to keys
	ShowRank      bool     // print the rank of every node
	ShowSize      bool     // print the subtree size of every node
	MaxValueWidth int      // truncate values to this many runes; 0 means no limit
	Palette       *Palette // colours for nodes; nil for monochrome output
}

// Palette colours nodes by the shape of their rank gaps.
type Palette struct {
	Even      *color.Color // both children have the same rank
	LeftHigh  *color.Color // the left child is taller
	RightHigh *color.Color // the right child is taller
}

// DefaultPalette is a palette suitable for dark and light terminals.
func DefaultPalette() *Palette {
	return &Palette{
		Even:      color.New(color.FgGreen),
		LeftHigh:  color.New(color.FgBlue),
		RightHigh: color.New(color.FgRed),
	}
}

// Sprint renders tree as an indented ASCII tree. Children are tagged
// with [L] and [R]; a missing child next to a present one is shown as ‘·’.
func Sprint[V any](tree *avl.Tree[V], config *Config) string {
	if config == nil {
		config = &Config{}
	}
	root, err := tree.Root()
	if err != nil {
		return "(empty)\n"
	}
	out := treeprint.NewWithRoot(label(root, config))
	addChildren(out, root, config)
	return out.String()
}

// Fprint writes tree to w, in the format of Sprint.
func Fprint[V any](w io.Writer, tree *avl.Tree[V], config *Config) error {
	_, err := io.WriteString(w, Sprint(tree, config))
	return err
}

func addChildren[V any](branch treeprint.Tree, n *avl.Node[V], config *Config) {
	if !n.Left().IsReal() && !n.Right().IsReal() {
		return
	}
	for _, child := range []struct {
		side string
		node *avl.Node[V]
	}{{"L", n.Left()}, {"R", n.Right()}} {
		switch {
		case !child.node.IsReal():
			branch.AddMetaNode(child.side, "·")
		case child.node.Size() == 1:
			branch.AddMetaNode(child.side, label(child.node, config))
		default:
			sub := branch.AddMetaBranch(child.side, label(child.node, config))
			addChildren(sub, child.node, config)
		}
	}
}

func label[V any](n *avl.Node[V], config *Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", n.Key())
	if config.ShowValues {
		v := fmt.Sprintf("%v", n.Value())
		if config.MaxValueWidth > 0 {
			if r := []rune(v); len(r) > config.MaxValueWidth {
				v = string(r[:config.MaxValueWidth]) + "…"
			}
		}
		fmt.Fprintf(&b, " = %s", v)
	}
	if config.ShowRank {
		fmt.Fprintf(&b, " r%d", n.Rank())
	}
	if config.ShowSize {
		fmt.Fprintf(&b, " s%d", n.Size())
	}
	s := b.String()
	if config.Palette == nil {
		return s
	}
	var c *color.Color
	switch dl, dr := n.Rank()-n.Left().Rank(), n.Rank()-n.Right().Rank(); {
	case dl < dr:
		c = config.Palette.LeftHigh
	case dl > dr:
		c = config.Palette.RightHigh
	default:
		c = config.Palette.Even
	}
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so switches on colours and
// limits the width of values according to the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{ShowValues: true, ShowRank: true}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Palette = DefaultPalette()
		w, _, err := term.GetSize(fd)
		if err != nil || w < 40 {
			config.MaxValueWidth = 10
		} else {
			config.MaxValueWidth = w / 3
		}
	} else {
		config.MaxValueWidth = 20
	}
	T().P("print", "console").Infof("setting value width to %d", config.MaxValueWidth)
	return config
}

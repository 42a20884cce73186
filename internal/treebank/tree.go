// Package treebank loads Penn Treebank parsed corpora. It parses the
// bracketed tree format of .mrg files and flattens each tree into the
// tagged sentence the quiz scores against. The corpus ships as parsed
// trees only, so tagged sentences are always derived from the trees.
package treebank

import (
	"fmt"
	"io"
)

// NoneTag labels empty categories in the treebank: traces, zero elements
// and other leaves with no surface form. They are dropped during
// flattening because there is nothing for a user to tag.
const NoneTag = "-NONE-"

// TaggedWord is a single surface token with its reference tag.
type TaggedWord struct {
	Token string
	Tag   string
}

// Sentence is an ordered sequence of tagged words flattened from one
// parse tree.
type Sentence []TaggedWord

// Tokens returns the surface tokens of the sentence, in order.
func (s Sentence) Tokens() []string {
	out := make([]string, len(s))
	for i, w := range s {
		out[i] = w.Token
	}
	return out
}

// Tags returns the reference tags of the sentence, in order.
func (s Sentence) Tags() []string {
	out := make([]string, len(s))
	for i, w := range s {
		out[i] = w.Tag
	}
	return out
}

// Node is one node of a bracketed parse tree. Interior nodes carry a
// syntactic label and children; preterminal leaves carry the
// part-of-speech label and the surface token.
type Node struct {
	Label    string
	Token    string
	Children []*Node
}

// IsLeaf reports whether the node is a preterminal leaf.
func (n *Node) IsLeaf() bool { return n.Token != "" }

// TaggedWords flattens the tree into its tagged surface tokens in
// reading order, dropping -NONE- leaves.
func (n *Node) TaggedWords() Sentence {
	var out Sentence
	n.appendTagged(&out)
	return out
}

func (n *Node) appendTagged(out *Sentence) {
	if n.IsLeaf() {
		if n.Label != NoneTag {
			*out = append(*out, TaggedWord{Token: n.Token, Tag: n.Label})
		}
		return
	}
	for _, c := range n.Children {
		c.appendTagged(out)
	}
}

// ParseTrees reads bracketed parse trees from r until EOF. Each tree in a
// .mrg file is wrapped in an extra pair of parentheses with an empty
// label; such wrappers are unwrapped so callers see the sentence root.
func ParseTrees(r io.Reader) ([]*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read trees: %w", err)
	}

	p := &parser{data: data, line: 1}
	var trees []*Node
	for {
		p.skipSpace()
		if p.done() {
			return trees, nil
		}
		if p.peek() != '(' {
			return nil, p.errorf("expected '(' at top level, found %q", rune(p.peek()))
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if n.Label == "" && len(n.Children) == 1 {
			n = n.Children[0]
		}
		trees = append(trees, n)
	}
}

type parser struct {
	data []byte
	pos  int
	line int
}

func (p *parser) done() bool { return p.pos >= len(p.data) }

func (p *parser) peek() byte { return p.data[p.pos] }

func (p *parser) advance() byte {
	b := p.data[p.pos]
	p.pos++
	if b == '\n' {
		p.line++
	}
	return b
}

func (p *parser) skipSpace() {
	for !p.done() && isSpace(p.data[p.pos]) {
		p.advance()
	}
}

// atom consumes a run of bytes up to the next delimiter. Treebank atoms
// may contain any printable byte except parentheses and whitespace
// (tags like -LRB- and tokens like *T*-1 are atoms).
func (p *parser) atom() string {
	start := p.pos
	for !p.done() && isAtomByte(p.data[p.pos]) {
		p.advance()
	}
	return string(p.data[start:p.pos])
}

// parseNode parses one parenthesized node; the cursor must sit on '('.
func (p *parser) parseNode() (*Node, error) {
	p.advance()
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("unterminated node")
	}

	n := &Node{}
	if isAtomByte(p.peek()) {
		n.Label = p.atom()
	}

	for {
		p.skipSpace()
		if p.done() {
			return nil, p.errorf("unterminated node %q", n.Label)
		}
		switch {
		case p.peek() == ')':
			p.advance()
			if n.Token == "" && len(n.Children) == 0 {
				return nil, p.errorf("empty node %q", n.Label)
			}
			return n, nil
		case p.peek() == '(':
			if n.Token != "" {
				return nil, p.errorf("node %q mixes a token with children", n.Label)
			}
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		default:
			if n.Token != "" || len(n.Children) > 0 {
				return nil, p.errorf("node %q mixes a token with children", n.Label)
			}
			n.Token = p.atom()
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isAtomByte(b byte) bool {
	return b != '(' && b != ')' && !isSpace(b)
}

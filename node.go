package tst

import (
	"fmt"
	"strings"
)

// node holds one character position of some inserted string. lo and hi hold
// the alternatives for the same position, eq continues the string with the
// next character.
type node struct {
	char       byte
	lo, eq, hi *node
	wordEnd    bool
}

func newNode(c byte) *node {
	return &node{char: c}
}

// insert adds s, whose first character has not been consumed yet, to the
// subtree rooted at n. s must be non-empty. It reports whether s was new.
func (n *node) insert(s string) bool {
	c := s[0]
	switch {
	case c < n.char:
		if n.lo == nil {
			n.lo = newNode(c)
		}
		return n.lo.insert(s)
	case c > n.char:
		if n.hi == nil {
			n.hi = newNode(c)
		}
		return n.hi.insert(s)
	}
	rest := s[1:]
	if len(rest) == 0 {
		added := !n.wordEnd
		n.wordEnd = true
		return added
	}
	if n.eq == nil {
		n.eq = newNode(rest[0])
	}
	return n.eq.insert(rest)
}

// search returns the node at which the last character of s is matched, or
// nil if the path for s does not exist. s must be non-empty.
func (n *node) search(s string) *node {
	for n != nil {
		c := s[0]
		switch {
		case c < n.char:
			n = n.lo
		case c > n.char:
			n = n.hi
		case len(s) == 1:
			return n
		default:
			s = s[1:]
			n = n.eq
		}
	}
	return nil
}

// collect appends to dst every string stored in the subtree rooted at n,
// each prefixed with prefix. Strings come out in lexicographic order.
func (n *node) collect(dst []string, prefix string) []string {
	if n == nil {
		return dst
	}
	dst = n.lo.collect(dst, prefix)
	word := prefix + string(n.char)
	if n.wordEnd {
		dst = append(dst, word)
	}
	dst = n.eq.collect(dst, word)
	return n.hi.collect(dst, prefix)
}

// count returns the number of strings stored in the subtree rooted at n.
func (n *node) count() int {
	if n == nil {
		return 0
	}
	c := n.lo.count() + n.eq.count() + n.hi.count()
	if n.wordEnd {
		c++
	}
	return c
}

// check verifies that every character in the lo subtree sorts before n.char
// and every character in the hi subtree after it, within the open interval
// (min, max) inherited from the siblings above. path is the prefix leading to
// n, used in the returned error.
func (n *node) check(path string, min, max int) error {
	if n == nil {
		return nil
	}
	if int(n.char) <= min || int(n.char) >= max {
		return &InvariantError{Path: path, Char: n.char}
	}
	if n.eq == nil && !n.wordEnd {
		return &InvariantError{Path: path, Char: n.char, Dangling: true}
	}
	if err := n.lo.check(path, min, int(n.char)); err != nil {
		return err
	}
	if err := n.hi.check(path, int(n.char), max); err != nil {
		return err
	}
	return n.eq.check(path+string(n.char), -1, 256)
}

func (n *node) dump(b *strings.Builder, label, indent string) {
	b.WriteString(indent)
	b.WriteString(label)
	fmt.Fprintf(b, "%q", n.char)
	if n.wordEnd {
		b.WriteByte('*')
	}
	b.WriteByte('\n')
	indent += "  "
	if n.eq != nil {
		n.eq.dump(b, "eq: ", indent)
	}
	if n.lo != nil {
		n.lo.dump(b, "lt: ", indent)
	}
	if n.hi != nil {
		n.hi.dump(b, "gt: ", indent)
	}
}

// InvariantError reports a node that violates the ordering of its siblings or
// that neither ends a word nor leads to one.
type InvariantError struct {
	Path     string
	Char     byte
	Dangling bool
}

func (e *InvariantError) Error() string {
	if e.Dangling {
		return fmt.Sprintf("tst: node %q after prefix %q ends no word", e.Char, e.Path)
	}
	return fmt.Sprintf("tst: node %q after prefix %q is out of order", e.Char, e.Path)
}

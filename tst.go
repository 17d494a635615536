package tst

import (
	"fmt"
	"strings"
)

// Tree is a ternary search tree holding a set of strings. The zero value is an
// empty tree ready to use.
//
// A Tree is not safe for concurrent use. Callers sharing one across goroutines
// must guard it themselves, for example with a sync.RWMutex around Insert.
type Tree struct {
	root *node
	// hasEmpty records whether "" was inserted. It is kept apart from the
	// nodes since the empty string has no character to anchor to.
	hasEmpty bool
	size     int
}

// New creates a new empty tree.
func New() *Tree {
	return new(Tree)
}

// Insert adds strings to the Tree. Inserting a string that is already present
// has no effect.
func (t *Tree) Insert(entries ...string) {
	for _, entry := range entries {
		t.insert(entry)
	}
}

func (t *Tree) insert(s string) {
	if len(s) == 0 {
		if !t.hasEmpty {
			t.hasEmpty = true
			t.size++
		}
		return
	}
	if t.root == nil {
		t.root = newNode(s[0])
	}
	if t.root.insert(s) {
		t.size++
	}
}

// Search reports whether s is stored in the Tree when exact is true, or
// whether some stored string has s as a prefix when exact is false.
//
// An empty tree contains nothing, not even the empty prefix. On a non-empty
// tree the empty string is a prefix of everything, but is an exact match only
// if it was inserted.
func (t *Tree) Search(s string, exact bool) bool {
	if t.empty() {
		return false
	}
	if len(s) == 0 {
		return !exact || t.hasEmpty
	}
	n := t.root.search(s)
	if n == nil {
		return false
	}
	if exact {
		return n.wordEnd
	}
	return n.wordEnd || n.eq != nil
}

// Contains reports whether s was inserted into the Tree.
func (t *Tree) Contains(s string) bool {
	return t.Search(s, true)
}

// HasPrefix reports whether at least one stored string equals or extends s.
func (t *Tree) HasPrefix(s string) bool {
	return t.Search(s, false)
}

// PrefixSearch returns all stored strings that have s as a prefix, in
// lexicographic byte order. The result is empty, never nil.
func (t *Tree) PrefixSearch(s string) []string {
	if len(s) == 0 {
		return t.AllStrings()
	}
	results := []string{}
	n := t.root.search(s)
	if n == nil {
		return results
	}
	if n.wordEnd {
		results = append(results, s)
	}
	return n.eq.collect(results, s)
}

// AllStrings returns every string stored in the Tree, in lexicographic byte
// order. The empty string, if present, comes first.
func (t *Tree) AllStrings() []string {
	results := make([]string, 0, t.size)
	if t.hasEmpty {
		results = append(results, "")
	}
	return t.root.collect(results, "")
}

// Size returns the number of distinct strings stored in the Tree.
func (t *Tree) Size() int {
	return t.size
}

// Len is an alias for Size.
func (t *Tree) Len() int {
	return t.size
}

// Validate walks the whole Tree and checks its structural invariants: sibling
// characters are strictly ordered, every node ends a word or leads to one, and
// the stored count matches the number of word ends.
func (t *Tree) Validate() error {
	if err := t.root.check("", -1, 256); err != nil {
		return err
	}
	n := t.root.count()
	if t.hasEmpty {
		n++
	}
	if n != t.size {
		return fmt.Errorf("tst: size is %d but %d strings are stored", t.size, n)
	}
	return nil
}

// String renders the structure of the Tree, one node per line. Nodes ending a
// word are marked with '*'.
func (t *Tree) String() string {
	if t.empty() {
		return "empty tree"
	}
	var b strings.Builder
	if t.hasEmpty {
		b.WriteString("\"\"*\n")
	}
	if t.root != nil {
		t.root.dump(&b, "", "")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (t *Tree) empty() bool {
	return t.root == nil && !t.hasEmpty
}

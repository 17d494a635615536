// Package wordlist loads line-delimited word lists and derives the input
// orderings used to exercise a ternary search tree.
package wordlist

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Load reads the word list at path, one word per line. Surrounding whitespace
// is stripped. Blank lines are skipped unless keepEmpty is set, in which case
// they are returned as the empty string.
func Load(path string, keepEmpty bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	defer f.Close()
	words, err := Read(f, keepEmpty)
	if err != nil {
		return nil, errors.Wrapf(err, "read word list %s", path)
	}
	return words, nil
}

// Read is like Load but reads from r.
func Read(r io.Reader, keepEmpty bool) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" && !keepEmpty {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return words, nil
}

// Unique returns words with duplicates removed, keeping first occurrences in
// order.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Sample returns k words drawn from words without replacement. words is not
// modified.
func Sample(rng *rand.Rand, words []string, k int) ([]string, error) {
	if k < 0 || k > len(words) {
		return nil, errors.Errorf("sample of %d from %d words", k, len(words))
	}
	idx := rng.Perm(len(words))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = words[j]
	}
	return out, nil
}

// Sorted returns a sorted copy of words. Inserting it in this order gives the
// most unbalanced tree.
func Sorted(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

// MedianFirst reorders sorted words so that every median comes before the
// words on either side of it, recursively. Inserting it in this order gives a
// balanced tree.
func MedianFirst(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	var walk func(lo, hi int)
	walk = func(lo, hi int) {
		if lo >= hi {
			return
		}
		mid := lo + (hi-lo)/2
		out = append(out, sorted[mid])
		walk(lo, mid)
		walk(mid+1, hi)
	}
	walk(0, len(sorted))
	return out
}

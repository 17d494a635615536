// Package bench measures insert and search times of a ternary search tree
// across tree sizes and insertion orders, and compares it with a map-backed
// set.
package bench

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	tst "github.com/sarthakjha889/go-ternary-search-tree"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/wordlist"
)

// Options controls a benchmark run.
type Options struct {
	// Sizes are the tree sizes to measure, in words.
	Sizes []int
	// Runs is the number of repetitions each timing is averaged over.
	Runs int
	// ProbeSize is the number of words inserted or searched per timing.
	ProbeSize int
	// HoldOut is the number of words kept out of the tree for the set
	// comparison.
	HoldOut int
}

// Point is the mean duration measured at one tree size.
type Point struct {
	Size int
	Mean time.Duration
}

// Timing holds the mean time to build a tree and to search it for a probe.
type Timing struct {
	Insert time.Duration
	Search time.Duration
}

// Case is the timing at one tree size for each insertion order.
type Case struct {
	Size    int
	Best    Timing // median-first order
	Average Timing // random order
	Worst   Timing // sorted order
}

// Comparison holds the times to fill and query a tree and a map set with the
// same words.
type Comparison struct {
	Words      int
	HoldOut    int
	SetInsert  time.Duration
	TreeInsert time.Duration
	SetSearch  time.Duration
	TreeSearch time.Duration
}

// Report collects the results of every benchmark.
type Report struct {
	Options    Options
	Insert     []Point
	Search     []Point
	Cases      []Case
	Comparison Comparison
}

// Runner runs benchmarks over a fixed word list.
type Runner struct {
	words []string
	opts  Options
	rng   *rand.Rand
	log   zerolog.Logger
	// hits keeps search results live so lookups are not optimised away.
	hits int
}

// NewRunner creates a Runner over the distinct words in words.
func NewRunner(words []string, opts Options, rng *rand.Rand, log zerolog.Logger) (*Runner, error) {
	words = wordlist.Unique(words)
	if opts.Runs <= 0 {
		return nil, errors.Errorf("runs must be positive, got %d", opts.Runs)
	}
	if opts.ProbeSize <= 0 || opts.ProbeSize > len(words) {
		return nil, errors.Errorf("probe size %d out of range for %d words", opts.ProbeSize, len(words))
	}
	if opts.HoldOut < 0 || opts.HoldOut >= len(words) {
		return nil, errors.Errorf("hold-out %d out of range for %d words", opts.HoldOut, len(words))
	}
	for _, size := range opts.Sizes {
		if size < opts.ProbeSize || size > len(words) {
			return nil, errors.Errorf("size %d out of range [%d, %d]", size, opts.ProbeSize, len(words))
		}
	}
	return &Runner{words: words, opts: opts, rng: rng, log: log}, nil
}

// Run executes every benchmark and collects the results.
func (r *Runner) Run() (*Report, error) {
	rep := &Report{Options: r.opts}
	var err error
	if rep.Insert, err = r.InsertScaling(); err != nil {
		return nil, errors.Wrap(err, "insert scaling")
	}
	if rep.Search, err = r.SearchScaling(); err != nil {
		return nil, errors.Wrap(err, "search scaling")
	}
	if rep.Cases, err = r.Cases(); err != nil {
		return nil, errors.Wrap(err, "cases")
	}
	rep.Comparison = r.CompareSet()
	return rep, nil
}

// InsertScaling builds a tree of each size from a random sample and times
// inserting one fixed probe into it.
func (r *Runner) InsertScaling() ([]Point, error) {
	probe, err := wordlist.Sample(r.rng, r.words, r.opts.ProbeSize)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(r.opts.Sizes))
	for _, size := range r.opts.Sizes {
		sample, err := wordlist.Sample(r.rng, r.words, size)
		if err != nil {
			return nil, err
		}
		tree := build(sample)
		var total time.Duration
		for i := 0; i < r.opts.Runs; i++ {
			total += timeInsert(tree, probe)
		}
		p := Point{Size: size, Mean: total / time.Duration(r.opts.Runs)}
		r.log.Debug().Int("size", size).Dur("mean", p.Mean).Msg("insert scaling")
		points = append(points, p)
	}
	return points, nil
}

// SearchScaling builds a tree of each size from a random sample and times
// searching it for one fixed probe.
func (r *Runner) SearchScaling() ([]Point, error) {
	probe, err := wordlist.Sample(r.rng, r.words, r.opts.ProbeSize)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(r.opts.Sizes))
	for _, size := range r.opts.Sizes {
		sample, err := wordlist.Sample(r.rng, r.words, size)
		if err != nil {
			return nil, err
		}
		tree := build(sample)
		var total time.Duration
		for i := 0; i < r.opts.Runs; i++ {
			total += r.timeSearch(tree, probe, false)
		}
		p := Point{Size: size, Mean: total / time.Duration(r.opts.Runs)}
		r.log.Debug().Int("size", size).Dur("mean", p.Mean).Msg("search scaling")
		points = append(points, p)
	}
	return points, nil
}

// Cases times building and searching trees of each size when the words are
// inserted median-first, in random order and sorted.
func (r *Runner) Cases() ([]Case, error) {
	cases := make([]Case, 0, len(r.opts.Sizes))
	for _, size := range r.opts.Sizes {
		sample, err := wordlist.Sample(r.rng, r.words, size)
		if err != nil {
			return nil, err
		}
		sorted := wordlist.Sorted(sample)
		c := Case{Size: size}
		if c.Best, err = r.timeOrder(wordlist.MedianFirst(sorted)); err != nil {
			return nil, err
		}
		if c.Average, err = r.timeOrder(sample); err != nil {
			return nil, err
		}
		if c.Worst, err = r.timeOrder(sorted); err != nil {
			return nil, err
		}
		r.log.Debug().Int("size", size).
			Dur("best", c.Best.Insert).
			Dur("average", c.Average.Insert).
			Dur("worst", c.Worst.Insert).
			Msg("insertion cases")
		cases = append(cases, c)
	}
	return cases, nil
}

// CompareSet fills a tree and a map set with every word outside the hold-out
// and times inserting into and looking up the hold-out words in both.
func (r *Runner) CompareSet() Comparison {
	cut := len(r.words) - r.opts.HoldOut
	inserted, held := r.words[:cut], r.words[cut:]
	c := Comparison{Words: len(inserted), HoldOut: len(held)}

	start := time.Now()
	set := make(map[string]struct{})
	for _, w := range inserted {
		set[w] = struct{}{}
	}
	c.SetInsert = time.Since(start)

	tree := tst.New()
	c.TreeInsert = timeInsert(tree, inserted)

	start = time.Now()
	for _, w := range held {
		if _, ok := set[w]; ok {
			r.hits++
		}
	}
	c.SetSearch = time.Since(start)

	c.TreeSearch = r.timeSearch(tree, held, true)
	r.log.Debug().
		Dur("set_insert", c.SetInsert).Dur("tree_insert", c.TreeInsert).
		Dur("set_search", c.SetSearch).Dur("tree_search", c.TreeSearch).
		Msg("set comparison")
	return c
}

// timeOrder averages over the runs the time to build a fresh tree from words
// in the given order and the time to search it for a probe drawn from words.
func (r *Runner) timeOrder(words []string) (Timing, error) {
	var t Timing
	for i := 0; i < r.opts.Runs; i++ {
		tree := tst.New()
		t.Insert += timeInsert(tree, words)
		probe, err := wordlist.Sample(r.rng, words, r.opts.ProbeSize)
		if err != nil {
			return Timing{}, err
		}
		t.Search += r.timeSearch(tree, probe, false)
	}
	t.Insert /= time.Duration(r.opts.Runs)
	t.Search /= time.Duration(r.opts.Runs)
	return t, nil
}

func (r *Runner) timeSearch(tree *tst.Tree, words []string, exact bool) time.Duration {
	start := time.Now()
	for _, w := range words {
		if tree.Search(w, exact) {
			r.hits++
		}
	}
	return time.Since(start)
}

func timeInsert(tree *tst.Tree, words []string) time.Duration {
	start := time.Now()
	for _, w := range words {
		tree.Insert(w)
	}
	return time.Since(start)
}

func build(words []string) *tst.Tree {
	tree := tst.New()
	tree.Insert(words...)
	return tree
}

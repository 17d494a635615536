package tst

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sarthakjha889/go-ternary-search-tree/internal/wordlist"
)

func benchWords(n int) []string {
	rng := rand.New(rand.NewSource(1))
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 3+rng.Intn(8))
		for j := range b {
			b[j] = byte('a' + rng.Intn(26))
		}
		words[i] = string(b)
	}
	return words
}

func benchmarkInsert(b *testing.B, order func([]string) []string) {
	for _, size := range []int{1000, 10000} {
		words := order(wordlist.Unique(benchWords(size)))
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				t := New()
				t.Insert(words...)
			}
		})
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	benchmarkInsert(b, func(w []string) []string { return w })
}

func BenchmarkInsertSorted(b *testing.B) {
	benchmarkInsert(b, wordlist.Sorted)
}

func BenchmarkInsertMedianFirst(b *testing.B) {
	benchmarkInsert(b, func(w []string) []string { return wordlist.MedianFirst(wordlist.Sorted(w)) })
}

func BenchmarkSearch(b *testing.B) {
	words := benchWords(50000)
	t := New()
	t.Insert(words...)
	probe := words[:20]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, w := range probe {
			t.Search(w, true)
		}
	}
}

func BenchmarkMapSearch(b *testing.B) {
	words := benchWords(50000)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	probe := words[:20]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, w := range probe {
			_ = set[w]
		}
	}
}

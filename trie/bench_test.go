package trie_test

import (
	"fmt"
	"testing"

	"github.com/vaskorr/collections/trie"
)

func fillTrie(n int) *trie.Trie {
	tr := trie.New()
	for i := 0; i < n; i++ {
		tr.Insert(fmt.Sprintf("word-%06d", i))
	}
	return tr
}

func BenchmarkInsert(b *testing.B) {
	words := make([]string, b.N)
	for i := range words {
		words[i] = fmt.Sprintf("word-%06d", i)
	}
	tr := trie.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(words[i])
	}
}

func BenchmarkContainsWord(b *testing.B) {
	tr := fillTrie(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ContainsWord("word-050000")
	}
}

// BenchmarkContainsWord_MapBaseline probes the same key in a plain map
// for a cost reference point.
func BenchmarkContainsWord_MapBaseline(b *testing.B) {
	m := make(map[string]struct{}, 100_000)
	for i := 0; i < 100_000; i++ {
		m[fmt.Sprintf("word-%06d", i)] = struct{}{}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m["word-050000"]
	}
}

func BenchmarkHasPrefix(b *testing.B) {
	tr := fillTrie(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.HasPrefix("word-05")
	}
}

func BenchmarkWordsWithPrefix(b *testing.B) {
	tr := fillTrie(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tr.WordsWithPrefix("word-00")
		for it.Next() {
			_ = it.Value()
		}
	}
}

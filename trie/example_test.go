package trie_test

import (
	"fmt"

	"github.com/vaskorr/collections/trie"
)

// ExampleTrie shows word vs prefix membership on a small dictionary.
func ExampleTrie() {
	tr := trie.New()
	tr.Insert("cat")
	tr.Insert("car")
	tr.Insert("cart")

	fmt.Println(tr.HasPrefix("ca"))      // path exists
	fmt.Println(tr.ContainsWord("ca"))   // but "ca" was never inserted
	fmt.Println(tr.ContainsWord("car"))

	// Output:
	// true
	// false
	// true
}

// ExampleTrie_WordsWithPrefix lists the completions of a prefix in
// lexicographic order.
func ExampleTrie_WordsWithPrefix() {
	tr := trie.New()
	for _, w := range []string{"dog", "cart", "cat", "car"} {
		tr.Insert(w)
	}

	it := tr.WordsWithPrefix("ca")
	for it.Next() {
		fmt.Println(it.Value())
	}

	// Output:
	// car
	// cart
	// cat
}

// ExampleTrie_Remove demonstrates pruning of dead branches.
func ExampleTrie_Remove() {
	tr := trie.New()
	tr.Insert("car")
	tr.Insert("cart")

	_ = tr.Remove("cart")
	fmt.Println(tr.HasPrefix("cart")) // suffix pruned
	fmt.Println(tr.ContainsWord("car"))

	// Output:
	// false
	// true
}

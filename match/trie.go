package match

import "github.com/npillmayer/emojify/seqtab"

// trie is a prefix tree over the code-points of all sequences of a table.
// Nodes live in a flat slice; node 0 is the root.
type trie struct {
	nodes []trieNode
}

type trieNode struct {
	next     map[rune]int32
	terminal int32 // index of the sequence ending here, or -1
}

func newTrie(capacity int) *trie {
	t := &trie{nodes: make([]trieNode, 1, capacity)}
	t.nodes[0].terminal = -1
	return t
}

// insert adds a path for cps. If a sequence already ends at the final node,
// the earlier one is kept.
func (t *trie) insert(cps []seqtab.Codepoint, seq int) {
	n := int32(0)
	for _, c := range cps {
		child, ok := t.nodes[n].next[rune(c)]
		if !ok {
			child = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{terminal: -1})
			if t.nodes[n].next == nil {
				t.nodes[n].next = make(map[rune]int32, 1)
			}
			t.nodes[n].next[rune(c)] = child
		}
		n = child
	}
	if t.nodes[n].terminal < 0 {
		t.nodes[n].terminal = int32(seq)
	}
}

func (t *trie) step(n int32, r rune) (int32, bool) {
	child, ok := t.nodes[n].next[r]
	return child, ok
}

func (t *trie) terminal(n int32) int32 {
	return t.nodes[n].terminal
}

// Package doctree holds converted pages under dotted logical names such as
// "global" or "extract.API".
package doctree

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Separator joins the keys of a leaf path.
const Separator = "."

// Tree is a nested mapping from key to text or to another Tree. Keys keep
// their insertion order.
type Tree struct {
	nodes *orderedmap.OrderedMap[string, *node]
}

type node struct {
	text string
	sub  *Tree // nil for leaves
}

func New() *Tree {
	return &Tree{nodes: orderedmap.New[string, *node]()}
}

// Keys returns the direct keys in insertion order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.nodes.Len())
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Set stores text at path, creating intermediate trees as needed. A leaf or
// subtree already at path is replaced in place, keeping its position.
func (t *Tree) Set(path, text string) {
	keys := strings.Split(path, Separator)
	cur := t
	for _, key := range keys[:len(keys)-1] {
		cur = cur.Branch(key)
	}
	cur.nodes.Set(keys[len(keys)-1], &node{text: text})
}

// Branch returns the subtree at key, creating it if key is missing or holds
// a leaf.
func (t *Tree) Branch(key string) *Tree {
	if n, ok := t.nodes.Get(key); ok && n.sub != nil {
		return n.sub
	}
	sub := New()
	t.nodes.Set(key, &node{sub: sub})
	return sub
}

// Get returns the text stored at path.
func (t *Tree) Get(path string) (string, bool) {
	keys := strings.Split(path, Separator)
	cur := t
	for i, key := range keys {
		n, ok := cur.nodes.Get(key)
		if !ok {
			return "", false
		}
		if i == len(keys)-1 {
			return n.text, n.sub == nil
		}
		if n.sub == nil {
			return "", false
		}
		cur = n.sub
	}
	return "", false
}

// Len counts the leaves at any depth.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(string, string) { count++ })
	return count
}

// Walk calls fn for every leaf, depth first in insertion order.
func (t *Tree) Walk(fn func(path, text string)) {
	t.walk("", fn)
}

func (t *Tree) walk(prefix string, fn func(path, text string)) {
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.sub != nil {
			pair.Value.sub.walk(prefix+pair.Key+Separator, fn)
			continue
		}
		fn(prefix+pair.Key, pair.Value.text)
	}
}

// Map returns a tree of the same shape with every leaf replaced by
// fn(path, text). The receiver is not modified.
func (t *Tree) Map(fn func(path, text string) string) *Tree {
	return t.mapTree("", fn)
}

func (t *Tree) mapTree(prefix string, fn func(path, text string) string) *Tree {
	out := New()
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		key, n := pair.Key, pair.Value
		if n.sub != nil {
			out.nodes.Set(key, &node{sub: n.sub.mapTree(prefix+key+Separator, fn)})
			continue
		}
		out.nodes.Set(key, &node{text: fn(prefix+key, n.text)})
	}
	return out
}

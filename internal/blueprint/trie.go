package blueprint

import "strings"

// pathTrie indexes actions by every progressive "/"-delimited prefix of
// their expanded URI, so a lookup by request path can find the most
// specific action, or any of its ancestors, without scanning every
// resource. Built once after structural parsing and parent-fixing, over
// every action whose URI template expands without error.
type pathTrie struct {
	root *trieNode
}

type trieNode struct {
	children map[byte]*trieNode
	actions  map[string][]*Action // by HTTP method, "" for method-agnostic
}

func newTrieNode() *trieNode {
	return &trieNode{children: map[byte]*trieNode{}}
}

func buildTrie(actions []*Action) *pathTrie {
	t := &pathTrie{root: newTrieNode()}
	for _, a := range actions {
		uri, ok := expandedURI(a)
		if !ok {
			continue
		}
		t.insertAt(t.root, a.requestMethod, a)
		path := ""
		for _, sub := range strings.Split(uri, "/") {
			if sub == "" {
				continue
			}
			path += "/" + sub
			t.insert(path, a.requestMethod, a)
		}
	}
	return t
}

// expandedURI returns an action's URI template expanded with the union of
// its own and its ancestors' parameter default/declared values, or false
// if it has no URI template or expanding it returns an error. A placeholder
// with no value is dropped by the expansion, not reported.
func expandedURI(a *Action) (string, bool) {
	if a.uriTemplate == nil {
		return "", false
	}
	uri, err := a.URI()
	if err != nil {
		return "", false
	}
	return uri, true
}

func (t *pathTrie) insert(path, method string, a *Action) {
	node := t.root
	for i := 0; i < len(path); i++ {
		c := path[i]
		child, ok := node.children[c]
		if !ok {
			child = newTrieNode()
			node.children[c] = child
		}
		node = child
	}
	t.insertAt(node, method, a)
}

func (t *pathTrie) insertAt(node *trieNode, method string, a *Action) {
	if node.actions == nil {
		node.actions = map[string][]*Action{}
	}
	node.actions[method] = append(node.actions[method], a)
}

// longestPrefix returns the actions registered at the longest trie path
// that is itself a prefix of path, mirroring pytrie's
// longest_prefix_value lookup.
func (t *pathTrie) longestPrefix(path string) map[string][]*Action {
	node := t.root
	var best map[string][]*Action
	if node.actions != nil {
		best = node.actions
	}
	for i := 0; i < len(path); i++ {
		child, ok := node.children[path[i]]
		if !ok {
			break
		}
		node = child
		if node.actions != nil {
			best = node.actions
		}
	}
	return best
}

// trimTrailingSlash removes one trailing "/" from a lookup path, as the
// reference __getitem__ implementation does before indexing the trie.
func trimTrailingSlash(path string) string {
	return strings.TrimSuffix(path, "/")
}

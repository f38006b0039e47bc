package blueprint

import (
	"strings"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
)

// Lookup resolves one of the three query-key shapes a caller can index a
// Blueprint by:
//
//   - ">group>resource>action" walks the group/resource/action hierarchy:
//     the group by name (empty for the unnamed group), the resource and
//     action by their IDs;
//   - "/path" or "/path:METHOD" resolves against the path trie, returning
//     every action at the longest registered prefix of path (optionally
//     filtered to one HTTP method);
//   - a bare name looks up a resource group directly.
func (b *Blueprint) Lookup(key string) (any, error) {
	if key == "" {
		group, ok := b.groups.Get("")
		if !ok {
			return nil, &bperrors.UnknownQueryKeyError{Key: key}
		}
		return group, nil
	}
	switch key[0] {
	case '>':
		return b.lookupPath(key[1:])
	case '/':
		return b.lookupURI(key)
	default:
		group, ok := b.groups.Get(key)
		if !ok {
			return nil, &bperrors.UnknownQueryKeyError{Key: key}
		}
		return group, nil
	}
}

func (b *Blueprint) lookupPath(rest string) (any, error) {
	parts := strings.Split(rest, ">")
	group, ok := b.groups.Get(parts[0])
	if !ok {
		return nil, &bperrors.UnknownQueryKeyError{Key: rest}
	}
	if len(parts) == 1 {
		return group, nil
	}
	resource, ok := group.Get(parts[1])
	if !ok {
		return nil, &bperrors.UnknownQueryKeyError{Key: rest}
	}
	if len(parts) == 2 {
		return resource, nil
	}
	action, ok := resource.actions.Get(parts[2])
	if !ok {
		return nil, &bperrors.UnknownQueryKeyError{Key: rest}
	}
	return action, nil
}

func (b *Blueprint) lookupURI(key string) (any, error) {
	path := key
	method := ""
	if colon := strings.IndexByte(key, ':'); colon >= 0 {
		path, method = key[:colon], key[colon+1:]
	}
	path = trimTrailingSlash(path)
	byMethod := b.trie.longestPrefix(path)
	if byMethod == nil {
		return nil, &bperrors.UnknownQueryKeyError{Key: key}
	}
	if method == "" {
		var all []*Action
		for _, actions := range byMethod {
			all = append(all, actions...)
		}
		return all, nil
	}
	actions, ok := byMethod[method]
	if !ok {
		return nil, &bperrors.UnknownQueryKeyError{Key: key}
	}
	return actions, nil
}

package storage

import "context"

// namespaced prefixes every key so several devices can share one backend
type namespaced struct {
	inner  Storage
	prefix string
}

// Namespaced scopes s to ns. Keys written through the returned Storage are
// invisible to other namespaces.
func Namespaced(s Storage, ns string) Storage {
	return &namespaced{inner: s, prefix: ns + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Apply(ctx context.Context, mutations ...Mutation) error {
	scoped := make([]Mutation, len(mutations))
	for i, m := range mutations {
		m.Key = n.prefix + m.Key
		scoped[i] = m
	}
	return n.inner.Apply(ctx, scoped...)
}

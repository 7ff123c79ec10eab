package storage

// prefixed namespaces every key of an underlying StateStore.
type prefixed struct {
	inner  StateStore
	prefix string
}

// WithPrefix returns a StateStore that stores every key as "prefix:key" in
// inner. An empty prefix returns inner unchanged.
func WithPrefix(inner StateStore, prefix string) StateStore {
	if prefix == "" {
		return inner
	}
	return &prefixed{inner: inner, prefix: prefix + ":"}
}

func (p *prefixed) Get(key string) (string, error) {
	return p.inner.Get(p.prefix + key)
}

func (p *prefixed) Set(key, value string) error {
	return p.inner.Set(p.prefix+key, value)
}

func (p *prefixed) Delete(key string) error {
	return p.inner.Delete(p.prefix + key)
}

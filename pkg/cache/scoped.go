package cache

// ScopedKeyer prefixes every key of an inner Keyer, so several sites can
// share one Redis database.
type ScopedKeyer struct {
	Keyer
	Prefix string
}

// NewScopedKeyer scopes inner under prefix. A nil inner means DefaultKeyer.
//
//	keyer := cache.NewScopedKeyer(nil, "bookshelf:blog:")
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return ScopedKeyer{Keyer: inner, Prefix: prefix}
}

func (k ScopedKeyer) ArtifactKey(booksHash string, opts ArtifactKeyOpts) string {
	return k.Prefix + k.Keyer.ArtifactKey(booksHash, opts)
}

func (k ScopedKeyer) CoverKey(url string) string {
	return k.Prefix + k.Keyer.CoverKey(url)
}

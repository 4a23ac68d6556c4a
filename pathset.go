package openstep

// Component identifies one step of a path into a Value tree: either a
// dictionary key or an array index. Exactly one of the two is active,
// reported by IsKey.
type Component struct {
	isKey bool
	key   ByteString
	index int
}

// KeyComponent builds a dictionary-key path component.
func KeyComponent(key ByteString) Component {
	return Component{isKey: true, key: key}
}

// IndexComponent builds an array-index path component.
func IndexComponent(index int) Component {
	return Component{isKey: false, index: index}
}

// IsKey reports whether c is a key component.
func (c Component) IsKey() bool {
	return c.isKey
}

// Key returns the key, valid only when IsKey is true.
func (c Component) Key() ByteString {
	return c.key
}

// Index returns the index, valid only when IsKey is false.
func (c Component) Index() int {
	return c.index
}

func (c Component) mapKey() any {
	if c.isKey {
		return "k:" + c.key.String()
	}
	return c.index
}

// PathSet is a recursive structure mapping Component -> PathSet,
// defining a finite subset of positions within a Value tree. The
// decoder's topLevelKeys parameter is a flat specialization: a PathSet
// whose children are all empty.
type PathSet struct {
	children map[any]*pathSetEntry
}

type pathSetEntry struct {
	component Component
	set       *PathSet
}

// NewPathSet returns an empty PathSet.
func NewPathSet() *PathSet {
	return &PathSet{}
}

// IsEmpty reports whether the set contains no components.
func (p *PathSet) IsEmpty() bool {
	return p == nil || len(p.children) == 0
}

// Insert adds path (a sequence of components) to the set, creating
// intermediate nodes as needed.
func (p *PathSet) Insert(path ...Component) *PathSet {
	cur := p
	for _, c := range path {
		cur = cur.child(c, true)
	}
	return p
}

// child returns the subset for component c, creating it if create is
// true and it does not yet exist.
func (p *PathSet) child(c Component, create bool) *PathSet {
	if p.children == nil {
		if !create {
			return nil
		}
		p.children = make(map[any]*pathSetEntry)
	}
	if e, ok := p.children[c.mapKey()]; ok {
		return e.set
	}
	if !create {
		return nil
	}
	e := &pathSetEntry{component: c, set: &PathSet{}}
	p.children[c.mapKey()] = e
	return e.set
}

// Subscript returns the subset reachable through component c, and
// whether c is present in the set at all.
func (p *PathSet) Subscript(c Component) (*PathSet, bool) {
	if p == nil || p.children == nil {
		return nil, false
	}
	e, ok := p.children[c.mapKey()]
	if !ok {
		return nil, false
	}
	return e.set, true
}

// SubscriptKey is Subscript specialized to a dictionary key.
func (p *PathSet) SubscriptKey(key ByteString) (*PathSet, bool) {
	return p.Subscript(KeyComponent(key))
}

// SubscriptIndex is Subscript specialized to an array index.
func (p *PathSet) SubscriptIndex(index int) (*PathSet, bool) {
	return p.Subscript(IndexComponent(index))
}

// Components enumerates the set's top-level components, in no
// particular order.
func (p *PathSet) Components() []Component {
	if p == nil {
		return nil
	}
	out := make([]Component, 0, len(p.children))
	for _, e := range p.children {
		out = append(out, e.component)
	}
	return out
}

// TopLevelKeySet builds a flat PathSet over dictionary keys only — the
// specialization taken by DecodeTopLevelKeys.
func TopLevelKeySet(keys ...ByteString) *PathSet {
	p := NewPathSet()
	for _, k := range keys {
		p.Insert(KeyComponent(k))
	}
	return p
}

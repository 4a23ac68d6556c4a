package openstep

// PlainValue wraps a Value with an equivalence relation that ignores
// all formatting options and dictionary key order: same variant,
// string/data compared by content only, arrays compared element-wise,
// dictionaries compared as unordered mappings of plain values.
type PlainValue struct {
	v Value
}

// Plain wraps v for plain comparison.
func Plain(v Value) PlainValue {
	return PlainValue{v: v}
}

// Value returns the wrapped Value.
func (p PlainValue) Value() Value {
	return p.v
}

// Equal implements the plain-equivalence relation. It is recognized by
// github.com/google/go-cmp's cmp.Diff/cmp.Equal, which treats any type
// with an Equal method as its own comparator.
func (p PlainValue) Equal(other PlainValue) bool {
	a, b := p.v, other.v
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.str.Equal(b.str)
	case KindData:
		return bytesEqual(a.data, b.data)
	case KindArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !Plain(a.array[i]).Equal(Plain(b.array[i])) {
				return false
			}
		}
		return true
	case KindDictionary:
		return plainDictionariesEqual(a.dict, b.dict)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func plainDictionariesEqual(a, b *Dictionary) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !Plain(av).Equal(Plain(bv)) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: it ignores formatting
// options and dictionary order. Dictionary hashing is order-independent
// (entries are combined with a commutative operator).
func (p PlainValue) Hash() uint64 {
	return hashValue(p.v)
}

func hashValue(v Value) uint64 {
	const kindSalt = 1099511628211
	h := uint64(v.kind+1) * kindSalt
	switch v.kind {
	case KindString:
		h ^= v.str.Hash()
	case KindData:
		h ^= hashBytes(v.data)
	case KindArray:
		for _, e := range v.array {
			h = h*1099511628211 ^ hashValue(e)
		}
	case KindDictionary:
		// XOR is commutative: entry order cannot affect the result.
		var acc uint64
		for _, k := range v.dict.Keys() {
			ev, _ := v.dict.Get(k)
			acc ^= (k.Hash() * 1099511628211) ^ hashValue(ev)
		}
		h ^= acc
	}
	return h
}

func hashBytes(b []byte) uint64 {
	var h uint64 = 14695981039346656037
	for _, c := range b {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return h
}

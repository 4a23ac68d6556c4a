package openstep

// AsString returns v's string payload and true if v is a string,
// otherwise the zero ByteString and false.
func (v Value) AsString() (ByteString, bool) {
	if v.kind != KindString {
		return ByteString{}, false
	}
	return v.str, true
}

// AsData returns v's data payload and true if v is data, otherwise nil
// and false.
func (v Value) AsData() ([]byte, bool) {
	if v.kind != KindData {
		return nil, false
	}
	return v.data, true
}

// AsArray returns v's element slice and true if v is an array,
// otherwise nil and false.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

// AsDictionary returns v's dictionary and true if v is a dictionary,
// otherwise nil and false.
func (v Value) AsDictionary() (*Dictionary, bool) {
	if v.kind != KindDictionary {
		return nil, false
	}
	return v.dict, true
}

// Lookup performs dictionary lookup by key, using a key with no
// formatting options (options never participate in identity, so this
// matches regardless of how the stored key was quoted). It reports
// (zero, false) if v is not a dictionary or the key is absent.
func (v Value) Lookup(key ByteString) (Value, bool) {
	d, ok := v.AsDictionary()
	if !ok {
		return Value{}, false
	}
	return d.Get(key)
}

// Index performs bounds-checked array indexing. It reports (zero,
// false) if v is not an array or index is out of range.
func (v Value) Index(index int) (Value, bool) {
	a, ok := v.AsArray()
	if !ok || index < 0 || index >= len(a) {
		return Value{}, false
	}
	return a[index], true
}

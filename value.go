package openstep

// Kind identifies which of the four variants a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindData
	KindArray
	KindDictionary
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindData:
		return "data"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// Key is a dictionary key: a ByteString plus the StringOptions it was
// (or should be) written with. Equality and hashing depend only on the
// string; options are carried for faithful re-emission only.
type Key struct {
	str     ByteString
	options StringOptions
}

// NewKey builds a Key with no formatting options.
func NewKey(s ByteString) Key {
	return Key{str: s}
}

// NewKeyOptions builds a Key carrying explicit formatting options.
func NewKeyOptions(s ByteString, options StringOptions) Key {
	return Key{str: s, options: options}
}

// Str returns the key's underlying string.
func (k Key) Str() ByteString {
	return k.str
}

// Options returns the key's formatting options.
func (k Key) Options() StringOptions {
	return k.options
}

// Equal compares two keys by string only, ignoring options.
func (k Key) Equal(other Key) bool {
	return k.str.Equal(other.str)
}

// Hash hashes a key by its string only, ignoring options, so that a key
// built from a bare string matches a dictionary entry whose key was
// parsed with different quoting.
func (k Key) Hash() uint64 {
	return k.str.Hash()
}

// dictEntry pairs a fully-formatted Key with its Value; dictionary
// lookups key on the string content only (see Key.Hash / Key.Equal).
type dictEntry struct {
	key   Key
	value Value
}

// Dictionary is an ordered-or-sorted mapping from Key to Value. order
// is nil whenever the source order was already ascending by ByteString
// comparison (the common case); it is otherwise a full permutation of
// the keys, preserving the order they were first read.
type Dictionary struct {
	entries map[string]dictEntry
	order   []ByteString
}

// NewDictionary returns an empty dictionary with implicit (sorted)
// ordering.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]dictEntry)}
}

// Len reports the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Get returns the value for key and whether it was present.
func (d *Dictionary) Get(key ByteString) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	e, ok := d.entries[key.String()]
	return e.value, ok
}

// GetKey returns the stored Key (with its original formatting options)
// for a given string, and whether it was present.
func (d *Dictionary) GetKey(key ByteString) (Key, bool) {
	if d == nil {
		return Key{}, false
	}
	e, ok := d.entries[key.String()]
	return e.key, ok
}

// Set inserts or overwrites the entry for key. If the key is already
// present, the new value (and new key formatting) wins — matching
// decode's last-write-wins policy for repeated keys.
func (d *Dictionary) Set(key Key, value Value) {
	if _, existed := d.entries[key.str.String()]; !existed {
		d.order = appendOrderIfTracked(d, key.str)
	}
	d.entries[key.str.String()] = dictEntry{key: key, value: value}
}

// appendOrderIfTracked appends s to d.order only if d.order is already
// being tracked (non-nil); a nil order stays nil, whatever the insertion
// order. Dictionaries built with NewDictionary therefore keep order nil,
// which HasOrder reports as "encode sorted".
func appendOrderIfTracked(d *Dictionary, s ByteString) []ByteString {
	if d.order == nil {
		return nil
	}
	return append(d.order, s)
}

// HasOrder reports whether an explicit key order is recorded (the
// source order was not already ascending).
func (d *Dictionary) HasOrder() bool {
	return d != nil && d.order != nil
}

// Order returns the explicit key order, or nil if none is recorded.
func (d *Dictionary) Order() []ByteString {
	if d == nil {
		return nil
	}
	return d.order
}

// SetOrder forcibly assigns an explicit key order, which must be a
// permutation of the dictionary's current keys (the encoder panics
// otherwise).
func (d *Dictionary) SetOrder(order []ByteString) {
	d.order = order
}

// Keys returns the dictionary's keys in encoding order: the explicit
// order if present, else every key sorted ascending by ByteString.
func (d *Dictionary) Keys() []ByteString {
	if d == nil {
		return nil
	}
	if d.order != nil {
		out := make([]ByteString, len(d.order))
		copy(out, d.order)
		return out
	}
	out := make([]ByteString, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.key.str)
	}
	sortByteStrings(out)
	return out
}

func sortByteStrings(s []ByteString) {
	// Insertion sort: dictionaries in this format are small in
	// practice and this keeps the core pure, synchronous, and free of
	// incidental allocation.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Less(s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Value is a tagged union of string, data, array, and dictionary. The
// zero Value is the empty string with no options.
type Value struct {
	kind Kind

	str        ByteString
	strOptions StringOptions

	data []byte

	array        []Value
	arrayOptions ArrayOptions

	dict        *Dictionary
	dictOptions DictionaryOptions
}

// NewString returns a string Value with no formatting options.
func NewString(s ByteString) Value {
	return Value{kind: KindString, str: s}
}

// NewStringOptions returns a string Value carrying formatting options.
func NewStringOptions(s ByteString, options StringOptions) Value {
	return Value{kind: KindString, str: s, strOptions: options}
}

// NewData returns a data Value wrapping a copy of b.
func NewData(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindData, data: cp}
}

// NewArray returns an array Value with no formatting options.
func NewArray(elements []Value) Value {
	return Value{kind: KindArray, array: elements}
}

// NewArrayOptions returns an array Value carrying formatting options.
func NewArrayOptions(elements []Value, options ArrayOptions) Value {
	return Value{kind: KindArray, array: elements, arrayOptions: options}
}

// NewDictionaryValue returns a dictionary Value with no formatting
// options.
func NewDictionaryValue(d *Dictionary) Value {
	return Value{kind: KindDictionary, dict: d}
}

// NewDictionaryValueOptions returns a dictionary Value carrying
// formatting options.
func NewDictionaryValueOptions(d *Dictionary, options DictionaryOptions) Value {
	return Value{kind: KindDictionary, dict: d, dictOptions: options}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// StringOptions returns v's formatting options if v is a string, else
// the zero value.
func (v Value) StringOptions() StringOptions {
	return v.strOptions
}

// ArrayOptions returns v's formatting options if v is an array, else
// the zero value.
func (v Value) ArrayOptions() ArrayOptions {
	return v.arrayOptions
}

// DictionaryOptions returns v's formatting options if v is a
// dictionary, else the zero value.
func (v Value) DictionaryOptions() DictionaryOptions {
	return v.dictOptions
}

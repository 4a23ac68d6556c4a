package openstep

// ByteString is an immutable UTF-8 byte sequence with a cached
// all-ASCII flag. Equality and ordering operate on the raw UTF-8 bytes,
// never on decoded runes.
type ByteString struct {
	s       string
	isASCII bool
}

// NewByteString wraps a Go string, which is assumed to already be valid
// UTF-8 (as all Go strings produced by the language are).
func NewByteString(s string) ByteString {
	return ByteString{s: s, isASCII: isASCIIString(s)}
}

// NewByteStringFromBytes copies b into a new ByteString.
func NewByteStringFromBytes(b []byte) ByteString {
	return NewByteString(string(b))
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// String returns the underlying UTF-8 string.
func (b ByteString) String() string {
	return b.s
}

// Bytes returns the underlying UTF-8 bytes.
func (b ByteString) Bytes() []byte {
	return []byte(b.s)
}

// IsASCII reports whether every byte is <= 0x7F.
func (b ByteString) IsASCII() bool {
	return b.isASCII
}

// Len returns the length in bytes.
func (b ByteString) Len() int {
	return len(b.s)
}

// Equal reports byte-wise equality of the UTF-8 form.
func (b ByteString) Equal(other ByteString) bool {
	return b.s == other.s
}

// Compare returns -1, 0, or 1, ordering lexicographically over UTF-8
// bytes; a string is less than any of its proper extensions.
func (b ByteString) Compare(other ByteString) int {
	switch {
	case b.s < other.s:
		return -1
	case b.s > other.s:
		return 1
	default:
		return 0
	}
}

// Less reports whether b sorts before other.
func (b ByteString) Less(other ByteString) bool {
	return b.s < other.s
}

// Hash returns a hash consistent with Equal; it depends only on the
// UTF-8 bytes.
func (b ByteString) Hash() uint64 {
	// FNV-1a, 64-bit.
	var h uint64 = 14695981039346656037
	for i := 0; i < len(b.s); i++ {
		h ^= uint64(b.s[i])
		h *= 1099511628211
	}
	return h
}

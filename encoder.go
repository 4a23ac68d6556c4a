package openstep

import "fmt"

// IndentationKind selects how Encoding indents nested arrays and
// dictionaries.
type IndentationKind int

const (
	IndentationNone IndentationKind = iota
	IndentationSpaces
	IndentationTabs
)

// Indentation is one of spaces(n), tabs, or none. Spaces(0) behaves
// identically to none.
type Indentation struct {
	Kind  IndentationKind
	Width int // meaningful only when Kind == IndentationSpaces
}

// IndentSpaces builds a spaces(n) indentation.
func IndentSpaces(n int) Indentation {
	return Indentation{Kind: IndentationSpaces, Width: n}
}

// IndentTabs builds a tabs indentation.
func IndentTabs() Indentation {
	return Indentation{Kind: IndentationTabs}
}

func (ind Indentation) unitBytes() []byte {
	switch ind.Kind {
	case IndentationTabs:
		return []byte{'\t'}
	case IndentationSpaces:
		if ind.Width <= 0 {
			return nil
		}
		return []byte(spacesOfWidth(ind.Width))
	default:
		return nil
	}
}

func spacesOfWidth(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Encoding is the encoder's configuration: an indentation style and
// the current nesting level. The zero value is usable directly: no
// indentation, top level.
type Encoding struct {
	Indentation Indentation
	Level       int
}

func (enc Encoding) writeIndent(out *[]byte, level int) {
	unit := enc.Indentation.unitBytes()
	if unit == nil {
		return
	}
	for i := 0; i < level; i++ {
		*out = append(*out, unit...)
	}
}

func (enc Encoding) nested() Encoding {
	enc.Level++
	return enc
}

// Encode appends the textual encoding of v to *out (a growable byte
// sink the caller owns) under the given configuration. Encoding never
// fails except for an internal assertion that an explicit dictionary
// order matches its key set.
func Encode(out *[]byte, v Value, enc Encoding) {
	switch v.Kind() {
	case KindString:
		encodeString(out, v.str, v.strOptions)
	case KindData:
		encodeData(out, v.data)
	case KindArray:
		encodeArray(out, v.array, v.arrayOptions, enc)
	case KindDictionary:
		encodeDictionary(out, v.dict, v.dictOptions, enc)
	}
}

// EncodeToBytes is a convenience wrapper returning a fresh byte slice.
func EncodeToBytes(v Value, enc Encoding) []byte {
	var out []byte
	Encode(&out, v, enc)
	return out
}

// EncodeToString is EncodeToBytes returning a string.
func EncodeToString(v Value, enc Encoding) string {
	return string(EncodeToBytes(v, enc))
}

func encodeString(out *[]byte, s ByteString, opts StringOptions) {
	raw := s.Bytes()
	if opts.Has(StringOptionUnquoted) && len(raw) > 0 && allUnquotedChars(raw) {
		*out = append(*out, raw...)
		return
	}
	*out = append(*out, '"')
	lfEscaping := opts.LineFeedEscaping()
	tabOctal := opts.Has(StringOptionEscapedHorizontalTabsOctal)
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == '\t':
			if tabOctal {
				*out = append(*out, '\\', '0', '1', '1')
			} else {
				*out = append(*out, '\t')
			}
		case b == '\\':
			*out = append(*out, '\\', '\\')
		case b == '"':
			*out = append(*out, '\\', '"')
		case b == '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				appendLineFeedEscape(out, lfEscaping)
				i++
			} else {
				appendLineFeedEscape(out, lfEscaping)
			}
		case b == '\n':
			appendLineFeedEscape(out, lfEscaping)
		default:
			*out = append(*out, b)
		}
	}
	*out = append(*out, '"')
}

func appendLineFeedEscape(out *[]byte, e LineFeedEscaping) {
	switch e {
	case LineFeedEscapingNamed:
		*out = append(*out, '\\', 'n')
	case LineFeedEscapingLiteral:
		*out = append(*out, '\\', '\n')
	case LineFeedEscapingOctal:
		*out = append(*out, '\\', '0', '1', '2')
	default:
		*out = append(*out, '\n')
	}
}

func allUnquotedChars(b []byte) bool {
	for _, c := range b {
		if !isUnquotedChar(c) {
			return false
		}
	}
	return true
}

const lowerHex = "0123456789abcdef"

func encodeData(out *[]byte, data []byte) {
	*out = append(*out, '<')
	for _, b := range data {
		*out = append(*out, lowerHex[b>>4], lowerHex[b&0xF])
	}
	*out = append(*out, '>')
}

func encodeArray(out *[]byte, elements []Value, opts ArrayOptions, enc Encoding) {
	*out = append(*out, '(')
	brk := opts.Has(ArrayOptionBreakElementsOntoLines)
	space := opts.Has(ArrayOptionSpaceSeparator) && !brk
	if brk {
		*out = append(*out, '\n')
	}
	inner := enc.nested()
	for i, el := range elements {
		if i > 0 {
			*out = append(*out, ',')
			if brk {
				*out = append(*out, '\n')
			} else if space {
				*out = append(*out, ' ')
			}
		}
		if brk {
			enc.writeIndent(out, inner.Level)
		}
		Encode(out, el, inner)
	}
	if len(elements) > 0 {
		if opts.Has(ArrayOptionTrailingComma) {
			*out = append(*out, ',')
		}
		if brk {
			*out = append(*out, '\n')
		}
	}
	if brk {
		enc.writeIndent(out, enc.Level)
	}
	*out = append(*out, ')')
}

func encodeDictionary(out *[]byte, d *Dictionary, opts DictionaryOptions, enc Encoding) {
	*out = append(*out, '{')
	brk := opts.Has(DictionaryOptionBreakElementsOntoLines)
	if brk {
		*out = append(*out, '\n')
	}
	inner := enc.nested()
	keys := d.Keys()
	assertOrderMatchesKeys(d, keys)
	for _, k := range keys {
		if brk {
			enc.writeIndent(out, inner.Level)
		}
		key, _ := d.GetKey(k)
		encodeString(out, key.str, key.options)
		*out = append(*out, ' ', '=', ' ')
		val, _ := d.Get(k)
		Encode(out, val, inner)
		*out = append(*out, ';')
		if brk {
			*out = append(*out, '\n')
		}
	}
	if brk {
		enc.writeIndent(out, enc.Level)
	}
	*out = append(*out, '}')
}

// assertOrderMatchesKeys enforces the encoder's only failure
// precondition: an explicit order must be a permutation of
// the dictionary's actual key set.
func assertOrderMatchesKeys(d *Dictionary, keys []ByteString) {
	if !d.HasOrder() {
		return
	}
	if len(keys) != d.Len() {
		panic(fmt.Sprintf("openstep: dictionary order has %d keys but dictionary has %d entries", len(keys), d.Len()))
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		s := k.String()
		if seen[s] {
			panic(fmt.Sprintf("openstep: dictionary order repeats key %q", s))
		}
		seen[s] = true
		if _, ok := d.entries[s]; !ok {
			panic(fmt.Sprintf("openstep: dictionary order names key %q absent from the dictionary", s))
		}
	}
}

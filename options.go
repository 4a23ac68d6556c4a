package openstep

// StringOptions are formatting hints captured from (or intended for)
// the textual encoding of a string. The three "escaped line feeds"
// flags are mutually exclusive; at most one is ever set.
type StringOptions uint8

const (
	// StringOptionUnquoted marks a string that was written (or should
	// be written) without surrounding quotes.
	StringOptionUnquoted StringOptions = 1 << iota
	// StringOptionEscapedLineFeedsNamed prefers "\n" for LF.
	StringOptionEscapedLineFeedsNamed
	// StringOptionEscapedLineFeedsLiteral prefers a backslash followed
	// by a literal line feed.
	StringOptionEscapedLineFeedsLiteral
	// StringOptionEscapedLineFeedsOctal prefers "\012" for LF.
	StringOptionEscapedLineFeedsOctal
	// StringOptionEscapedHorizontalTabsOctal prefers "\011" for TAB.
	StringOptionEscapedHorizontalTabsOctal
)

const stringOptionsLineFeedMask = StringOptionEscapedLineFeedsNamed |
	StringOptionEscapedLineFeedsLiteral |
	StringOptionEscapedLineFeedsOctal

// LineFeedEscaping identifies which (if any) of the mutually exclusive
// LF-escaping preferences is set.
type LineFeedEscaping int

const (
	LineFeedEscapingNone LineFeedEscaping = iota
	LineFeedEscapingNamed
	LineFeedEscapingLiteral
	LineFeedEscapingOctal
)

// LineFeedEscaping reports which of the three mutually exclusive LF
// flags is set, or LineFeedEscapingNone if none is.
func (o StringOptions) LineFeedEscaping() LineFeedEscaping {
	switch o & stringOptionsLineFeedMask {
	case StringOptionEscapedLineFeedsNamed:
		return LineFeedEscapingNamed
	case StringOptionEscapedLineFeedsLiteral:
		return LineFeedEscapingLiteral
	case StringOptionEscapedLineFeedsOctal:
		return LineFeedEscapingOctal
	default:
		return LineFeedEscapingNone
	}
}

// Has reports whether all bits in mask are set.
func (o StringOptions) Has(mask StringOptions) bool {
	return o&mask == mask
}

// ArrayOptions are formatting hints for array encoding.
type ArrayOptions uint8

const (
	// ArrayOptionBreakElementsOntoLines puts each element (and the
	// closing parenthesis) on its own line.
	ArrayOptionBreakElementsOntoLines ArrayOptions = 1 << iota
	// ArrayOptionTrailingComma emits a comma after the last element.
	ArrayOptionTrailingComma
	// ArrayOptionSpaceSeparator emits a space after each comma; ignored
	// when ArrayOptionBreakElementsOntoLines is set.
	ArrayOptionSpaceSeparator
)

// Has reports whether all bits in mask are set.
func (o ArrayOptions) Has(mask ArrayOptions) bool {
	return o&mask == mask
}

// DictionaryOptions are formatting hints for dictionary encoding.
type DictionaryOptions uint8

const (
	// DictionaryOptionBreakElementsOntoLines puts each entry (and the
	// closing brace) on its own line.
	DictionaryOptionBreakElementsOntoLines DictionaryOptions = 1 << iota
)

// Has reports whether all bits in mask are set.
func (o DictionaryOptions) Has(mask DictionaryOptions) bool {
	return o&mask == mask
}

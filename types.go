package bhasha

// SegmentKind tells whether a segment is reproduced verbatim or translated.
type SegmentKind int

const (
	// SegmentFormat is markup reproduced unchanged (line breaks, header markers,
	// emoji/bullet prefixes, separators, surrounding whitespace).
	SegmentFormat SegmentKind = iota
	// SegmentText is natural-language content eligible for translation.
	SegmentText
)

// String returns "format" or "text".
func (k SegmentKind) String() string {
	if k == SegmentText {
		return "text"
	}
	return "format"
}

// Segment is one atomic unit of a parsed message.
type Segment struct {
	Kind    SegmentKind
	Content string
}

// FormatSegment builds a verbatim segment.
func FormatSegment(content string) Segment {
	return Segment{Kind: SegmentFormat, Content: content}
}

// TextSegment builds a translatable segment.
func TextSegment(content string) Segment {
	return Segment{Kind: SegmentText, Content: content}
}

// IsText reports whether the segment carries translatable text.
func (s Segment) IsText() bool {
	return s.Kind == SegmentText
}

// Content types understood by the built-in processors.
const (
	ContentTypeMessage = "message"
	ContentTypeHTML    = "html"
)

// Detection is the raw answer of a language detector.
type Detection struct {
	Lang       string  // Language code as reported by the backend (may be region-tagged)
	Confidence float64 // 0..1, zero when the backend does not report one
}

// ProcessedContent is the result of a translation operation.
type ProcessedContent struct {
	Content         string // Translated content
	TargetLang      string // Normalized target language
	TotalSegments   int    // Non-blank text segments found
	TranslatedCount int    // Segments the backend translated
	FailedCount     int    // Segments left untranslated after a backend failure
}

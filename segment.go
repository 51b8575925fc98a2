package bhasha

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BulletGlyphs is the fixed set of emoji recognized as bullet markers.
// Glyphs outside this set are treated as ordinary text.
const BulletGlyphs = "🏢📄⏰🌐📁🎯🔍⚖️💡📊"

var (
	// emoji prefix: optional indent, one or more bullet glyphs, optional bold opener
	bulletPrefixRe = regexp.MustCompile(`^(\s*[` + glyphClass(BulletGlyphs) + `]+\s*\*{0,2})`)
	// first " - " separator after the label, absorbing a closing bold marker
	clauseSeparatorRe = regexp.MustCompile(`^(.*?)(\*{0,2}\s+-\s+)`)
	// closing bold marker at the end of a label without a second clause
	closingBoldRe = regexp.MustCompile(`\*{1,2}\s*$`)
)

func glyphClass(glyphs string) string {
	var b strings.Builder
	for _, r := range glyphs {
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}

// lineRule classifies one line body (without its line break).
type lineRule func(body string) ([]Segment, bool)

// lineRules are evaluated in precedence order; the last rule always matches.
var lineRules = []lineRule{
	blankLine,
	headerLine,
	bulletLine,
	plainLine,
}

// SegmentMessage splits a message into format and text segments, line by line.
// Concatenating the contents of the returned segments reproduces message exactly.
func SegmentMessage(message string) []Segment {
	var segments []Segment

	for len(message) > 0 {
		line := message
		if i := strings.IndexByte(message, '\n'); i >= 0 {
			line = message[:i+1]
		}
		message = message[len(line):]

		segments = append(segments, SegmentLine(line)...)
	}

	return segments
}

// SegmentLine classifies a single line, including its trailing line break if any.
func SegmentLine(line string) []Segment {
	body, lineBreak := splitLineBreak(line)

	for _, rule := range lineRules {
		segs, ok := rule(body)
		if !ok {
			continue
		}
		if lineBreak == "" {
			return segs
		}
		// blank lines carry their break inside the single format segment
		if n := len(segs); n == 1 && segs[0].Kind == SegmentFormat && strings.TrimSpace(body) == "" {
			segs[0].Content += lineBreak
			return segs
		}
		return append(segs, FormatSegment(lineBreak))
	}

	return nil
}

// JoinSegments concatenates segment contents in order.
func JoinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

// SplitText emits s as a trimmed text segment surrounded by format segments
// holding the leading and trailing whitespace. Whitespace-only input yields a
// single format segment; empty input yields nothing.
func SplitText(s string) []Segment {
	if s == "" {
		return nil
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []Segment{FormatSegment(s)}
	}

	start := strings.Index(s, trimmed)
	var segs []Segment
	if start > 0 {
		segs = append(segs, FormatSegment(s[:start]))
	}
	segs = append(segs, TextSegment(trimmed))
	if end := start + len(trimmed); end < len(s) {
		segs = append(segs, FormatSegment(s[end:]))
	}
	return segs
}

func splitLineBreak(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

func blankLine(body string) ([]Segment, bool) {
	if strings.TrimSpace(body) != "" {
		return nil, false
	}
	return []Segment{FormatSegment(body)}, true
}

// headerLine keeps the first two characters as the marker and classifies the
// remainder inline, so emoji bullets inside headers keep their structure.
func headerLine(body string) ([]Segment, bool) {
	if !strings.HasPrefix(body, "#") {
		return nil, false
	}

	markerLen := 0
	for i := 0; i < 2 && markerLen < len(body); i++ {
		_, size := utf8.DecodeRuneInString(body[markerLen:])
		markerLen += size
	}

	segs := []Segment{FormatSegment(body[:markerLen])}
	rest := body[markerLen:]
	if inline, ok := bulletLine(rest); ok {
		return append(segs, inline...), true
	}
	return append(segs, SplitText(rest)...), true
}

func bulletLine(body string) ([]Segment, bool) {
	loc := bulletPrefixRe.FindStringIndex(body)
	if loc == nil {
		return nil, false
	}

	segs := []Segment{FormatSegment(body[:loc[1]])}
	rest := body[loc[1]:]

	if m := clauseSeparatorRe.FindStringSubmatchIndex(rest); m != nil {
		label, sep, clause := rest[m[2]:m[3]], rest[m[4]:m[5]], rest[m[5]:]
		segs = append(segs, SplitText(label)...)
		segs = append(segs, FormatSegment(sep))
		segs = append(segs, SplitText(clause)...)
		return segs, true
	}

	label, suffix := rest, ""
	if m := closingBoldRe.FindStringIndex(strings.TrimRightFunc(rest, unicode.IsSpace)); m != nil {
		label, suffix = rest[:m[0]], rest[m[0]:]
	}
	segs = append(segs, SplitText(label)...)
	if suffix != "" {
		segs = append(segs, FormatSegment(suffix))
	}
	return segs, true
}

func plainLine(body string) ([]Segment, bool) {
	return SplitText(body), true
}

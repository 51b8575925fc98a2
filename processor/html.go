package processor

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ZaguanLabs/bhasha"
)

// IgnoredTags are elements whose content is never translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// noTranslateAttr marks an element whose subtree is left untouched.
const noTranslateAttr = "data-no-translate"

// voidElements never have content, so they never open a skipped region.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// HTMLProcessor segments HTML into markup and text runs.
//
// Segments carry the raw bytes of each token, so joining them reproduces the
// input exactly. Only text outside ignored elements becomes a text segment;
// its surrounding whitespace is kept in format segments.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// Extract tokenizes content into segments.
func (p *HTMLProcessor) Extract(content string) ([]Segment, error) {
	z := html.NewTokenizer(strings.NewReader(content))

	var (
		segments  []Segment
		skipTag   string
		skipDepth int
	)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return nil, &bhasha.ProcessorError{
				Message:     "failed to tokenize HTML",
				Cause:       z.Err(),
				ContentType: bhasha.ContentTypeHTML,
			}
		}

		// Raw must be copied before TagName, which lower-cases the buffer in place
		raw := string(z.Raw())

		switch tt {
		case html.TextToken:
			if skipDepth > 0 {
				segments = append(segments, bhasha.FormatSegment(raw))
				continue
			}
			segments = append(segments, bhasha.SplitText(raw)...)

		case html.StartTagToken:
			name, skip := p.inspectStartTag(z)
			switch {
			case skipDepth > 0 && name == skipTag:
				skipDepth++
			case skipDepth == 0 && skip:
				skipTag, skipDepth = name, 1
			}
			segments = append(segments, bhasha.FormatSegment(raw))

		case html.EndTagToken:
			if skipDepth > 0 {
				if name, _ := z.TagName(); string(name) == skipTag {
					skipDepth--
				}
			}
			segments = append(segments, bhasha.FormatSegment(raw))

		default:
			// self-closing tags, comments and doctypes
			segments = append(segments, bhasha.FormatSegment(raw))
		}
	}

	return segments, nil
}

// inspectStartTag returns the tag name and whether its content must be skipped.
func (p *HTMLProcessor) inspectStartTag(z *html.Tokenizer) (string, bool) {
	nameBytes, hasAttr := z.TagName()
	name := string(nameBytes)

	if voidElements[name] {
		return name, false
	}
	if p.ignoredTags[name] {
		return name, true
	}

	for hasAttr {
		var key []byte
		key, _, hasAttr = z.TagAttr()
		if string(key) == noTranslateAttr {
			return name, true
		}
	}

	return name, false
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return bhasha.ContentTypeHTML
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)

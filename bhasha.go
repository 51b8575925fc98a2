// Package bhasha provides a structure-preserving message translation engine.
//
// Bhasha splits formatted chat messages (markdown-like headers, emoji bullets,
// plain lines) into formatting and text segments, translates only the text
// through a pluggable provider, substitutes known domain acronyms with
// pre-authored localized glosses, and reassembles the message in its original
// shape. Every operation fails open: when the backend is unavailable the
// original text is returned.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/ZaguanLabs/bhasha"
//	    "github.com/ZaguanLabs/bhasha/provider"
//	)
//
//	func main() {
//	    t := bhasha.NewTranslator(provider.NewGoogleProvider())
//
//	    out := t.TranslateMessage(context.Background(), "## 🏢 **Business** - setup help\n", "hi")
//	    fmt.Print(out)
//	}
package bhasha

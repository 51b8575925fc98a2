// Package processor provides content processing implementations.
package processor

import "github.com/ZaguanLabs/bhasha"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = bhasha.ContentProcessor

// Segment is an alias to the main package type.
type Segment = bhasha.Segment

package ytdlp

import "fmt"

// PageInfo describes one pagination window of search results. Index is
// zero-based; the ends are the one-based inclusive bounds handed to the
// extractor's -I option, so consecutive pages tile the result space with
// no gap and no overlap.
type PageInfo struct {
	Size  int
	Index int
}

// LowerEnd returns the one-based index of the first item of the page.
func (p PageInfo) LowerEnd() int { return p.Index*p.Size + 1 }

// UpperEnd returns the one-based index of the last item of the page.
func (p PageInfo) UpperEnd() int { return (p.Index + 1) * p.Size }

// Range formats the window for the -I option.
func (p PageInfo) Range() string { return fmt.Sprintf("%d-%d", p.LowerEnd(), p.UpperEnd()) }

package shield

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// Span is a protected byte range [Start, End) of a text.
type Span struct {
	Start, End int
	Strip      bool // the first and last two bytes are markers to remove
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Inner returns the range of the span without markers.
func (s Span) Inner() (int, int) {
	if s.Strip && s.Len() >= 4 {
		return s.Start + 2, s.End - 2
	}
	return s.Start, s.End
}

func (s Span) contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// spanComparator orders spans by start position, longer spans first.
var spanComparator utils.Comparator = func(a, b interface{}) int {
	s, o := a.(Span), b.(Span)
	switch {
	case s.Start < o.Start:
		return -1
	case s.Start > o.Start:
		return 1
	case s.End > o.End:
		return -1
	case s.End < o.End:
		return 1
	}
	return 0
}

// collector gathers raw spans from all sources.
type collector struct {
	spans *arraylist.List
	limit int
}

func newCollector(textlen int) *collector {
	return &collector{spans: arraylist.New(), limit: textlen}
}

func (c *collector) add(start, end int, strip bool) {
	if start < 0 || end > c.limit || start >= end {
		return
	}
	c.spans.Add(Span{Start: start, End: end, Strip: strip})
}

// merged sorts the collected spans and merges overlapping ones. Adjacent
// spans are kept apart. A marker span keeps its markers stripped if it
// contains all spans it is merged with.
func (c *collector) merged() []Span {
	if c.spans.Size() == 0 {
		return nil
	}
	c.spans.Sort(spanComparator)
	result := make([]Span, 0, c.spans.Size())
	it := c.spans.Iterator()
	for it.Next() {
		s := it.Value().(Span)
		if n := len(result); n > 0 && s.Start < result[n-1].End {
			last := result[n-1]
			union := Span{Start: last.Start, End: last.End}
			if s.End > union.End {
				union.End = s.End
			}
			union.Strip = (last.Strip && last.contains(s)) || (s.Strip && s.contains(last))
			result[n-1] = union
			continue
		}
		result = append(result, s)
	}
	return result
}

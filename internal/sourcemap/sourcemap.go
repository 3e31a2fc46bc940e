// Package sourcemap represents sets of byte ranges into a source document
// and the operations needed to compose and resolve them: union, windowed
// intersection, and mapping a range back to the underlying bytes.
package sourcemap

import "sort"

// Range is a half-open byte range [Offset, Offset+Length) into a source
// document.
type Range struct {
	Offset int
	Length int
}

// End returns the exclusive end offset of the range.
func (r Range) End() int {
	return r.Offset + r.Length
}

// SourceMap is a sorted, merged set of byte ranges. Zero value is the
// empty set.
type SourceMap []Range

// New builds a SourceMap from a single range.
func New(offset, length int) SourceMap {
	if length <= 0 {
		return nil
	}

	return SourceMap{{Offset: offset, Length: length}}
}

// Union merges two source maps, coalescing adjacent or overlapping ranges.
func Union(maps ...SourceMap) SourceMap {
	var all []Range
	for _, m := range maps {
		all = append(all, m...)
	}
	if len(all) == 0 {
		return nil
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Offset < all[j].Offset
	})

	merged := make(SourceMap, 0, len(all))
	current := all[0]
	for _, r := range all[1:] {
		if r.Offset <= current.End() {
			if r.End() > current.End() {
				current.Length = r.End() - current.Offset
			}

			continue
		}
		merged = append(merged, current)
		current = r
	}
	merged = append(merged, current)

	return merged
}

// IntersectWindow returns the portion of m that falls within
// [window.Offset, window.End()).
func (m SourceMap) IntersectWindow(window Range) SourceMap {
	var out SourceMap
	for _, r := range m {
		start := r.Offset
		end := r.End()
		if start < window.Offset {
			start = window.Offset
		}
		if end > window.End() {
			end = window.End()
		}
		if start < end {
			out = append(out, Range{Offset: start, Length: end - start})
		}
	}

	return out
}

// Bytes maps m back to a contiguous byte slice of source, concatenating
// each range's bytes in order. It is used to re-extract preformatted
// text that was not already delivered verbatim by the lexer.
func (m SourceMap) Bytes(source []byte) []byte {
	var out []byte
	for _, r := range m {
		start, end := r.Offset, r.End()
		if start < 0 {
			start = 0
		}
		if end > len(source) {
			end = len(source)
		}
		if start >= end {
			continue
		}
		out = append(out, source[start:end]...)
	}

	return out
}

// First returns the first range's start offset, or -1 for an empty map.
func (m SourceMap) First() int {
	if len(m) == 0 {
		return -1
	}

	return m[0].Offset
}

// Empty reports whether the map has no ranges.
func (m SourceMap) Empty() bool {
	return len(m) == 0
}

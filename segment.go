package pathmap

import "strings"

// specialBytes are the bytes that must be escaped when a segment is embedded
// in a node line, because they double as the node-line grammar's field
// delimiters (segment/, self-ref :, sentinel !) or the escape prefix itself.
const specialBytes = `\/:!`

// escapeSegment returns segment with every occurrence of \, /, :, and !
// prefixed by a single backslash, so it can be embedded verbatim in a node
// line's childField without being mistaken for a delimiter.
func escapeSegment(segment string) string {
	if !strings.ContainsAny(segment, specialBytes) {
		return segment
	}
	var b strings.Builder
	b.Grow(len(segment) + 4)
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if strings.IndexByte(specialBytes, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unescapeSegment reverses escapeSegment over a byte range that does not
// itself contain an unescaped delimiter; it is used internally by the
// node-line decoder, which already knows where the segment ends.
func unescapeSegment(escaped string) string {
	if !strings.ContainsRune(escaped, '\\') {
		return escaped
	}
	var b strings.Builder
	b.Grow(len(escaped))
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c == '\\' && i+1 < len(escaped) {
			i++
			b.WriteByte(escaped[i])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

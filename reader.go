package pathmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodedLine is the cached, parsed form of one line: either a node line or
// a leaf JSON value, distinguished by its first byte.
type decodedLine struct {
	isNode bool
	node   nodeLine
	leaf   json.RawMessage
}

// Reader answers point lookups against an already-serialized PathMap file
// without materializing the trie it encodes. Construct with NewReader or
// NewReaderString; a Reader never mutates the bytes it was built from.
type Reader struct {
	buf        []byte
	rootOffset int64
	cache      *lineCache
}

// NewReader constructs a Reader over data, which must be the unmodified
// output of a Writer's Stringify call (or an equivalent well-formed
// PathMap file). It locates the root line by scanning backward from the
// end of data; it does not otherwise validate the file up front.
func NewReader(data []byte) (*Reader, error) {
	rootOffset, err := findRootOffset(data)
	if err != nil {
		return nil, err
	}
	return &Reader{
		buf:        data,
		rootOffset: rootOffset,
		cache:      newLineCache(defaultLineCacheEntries),
	}, nil
}

// NewReaderString is a convenience wrapper for NewReader([]byte(data)).
func NewReaderString(data string) (*Reader, error) {
	return NewReader([]byte(data))
}

// findRootOffset implements §4.E's end-of-file scan: trailing newlines are
// ignored, and the root line begins just after the newline that precedes
// it (or at byte 0, if the root line is the only line in the file).
func findRootOffset(data []byte) (int64, error) {
	end := len(data)
	for end > 0 && data[end-1] == '\n' {
		end--
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: file has no complete line", ErrUnexpectedEOF)
	}
	i := end - 1
	for i >= 0 && data[i] != '\n' {
		i--
	}
	if i < 0 && end == len(data) {
		return 0, fmt.Errorf("%w: file has no complete line", ErrUnexpectedEOF)
	}
	return int64(i + 1), nil
}

// readLineAt scans forward from offset to the next "\n" and returns the
// bytes in between as a string, without the terminator.
func (r *Reader) readLineAt(offset int64) (string, error) {
	if offset < 0 || int(offset) > len(r.buf) {
		return "", fmt.Errorf("%w: offset %d out of range", ErrUnexpectedEOF, offset)
	}
	rel := bytes.IndexByte(r.buf[offset:], '\n')
	if rel < 0 {
		return "", fmt.Errorf("%w: no line terminator after offset %d", ErrUnexpectedEOF, offset)
	}
	return string(r.buf[offset : int(offset)+rel]), nil
}

// decodeLineAt returns the parsed line at offset, consulting (and
// populating) the reader's cache. A line is a node line if it is empty or
// begins with a reserved node-line starter byte; otherwise it is parsed as
// a JSON leaf value.
func (r *Reader) decodeLineAt(offset int64) (decodedLine, error) {
	if dl, ok := r.cache.get(offset); ok {
		return dl, nil
	}

	text, err := r.readLineAt(offset)
	if err != nil {
		return decodedLine{}, err
	}

	var dl decodedLine
	if len(text) == 0 || isNodeLineStart(text[0]) {
		n, err := decodeNodeLine(text)
		if err != nil {
			return decodedLine{}, err
		}
		dl = decodedLine{isNode: true, node: n}
	} else {
		dl = decodedLine{leaf: json.RawMessage(text)}
	}

	r.cache.put(offset, dl)
	return dl, nil
}

// Find resolves path against the file's trie, returning the payload stored
// there and true, or false if path was never inserted. path must begin
// with "/", or Find returns ErrPathShape.
func (r *Reader) Find(path string) (Payload, bool, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, false, err
	}

	rootDL, err := r.decodeLineAt(r.rootOffset)
	if err != nil {
		return nil, false, err
	}
	if !rootDL.isNode {
		return nil, false, fmt.Errorf("%w: at root offset %d", ErrUnexpectedPayload, r.rootOffset)
	}

	cur := rootDL.node
	for i, seg := range segs {
		ref, ok := cur.Children[seg]
		if !ok {
			return nil, false, nil
		}

		remaining := segs[i+1:]
		switch ref.Kind {
		case RefInline:
			if len(remaining) > 0 {
				return nil, false, nil
			}
			return true, true, nil

		case RefOffset:
			dl, err := r.decodeLineAt(ref.Offset)
			if err != nil {
				return nil, false, err
			}
			if dl.isNode {
				cur = dl.node
				continue
			}
			if len(remaining) > 0 {
				return nil, false, nil
			}
			return decodeLeafPayload(dl.leaf)
		}
	}

	return r.resolveSelf(cur.Self)
}

// resolveSelf resolves a node's self-reference, once every path segment has
// been consumed without already resolving a leaf.
func (r *Reader) resolveSelf(self Ref) (Payload, bool, error) {
	switch self.Kind {
	case RefInline:
		return true, true, nil
	case RefOffset:
		dl, err := r.decodeLineAt(self.Offset)
		if err != nil {
			return nil, false, err
		}
		if dl.isNode {
			return nil, false, fmt.Errorf("%w: self-reference at offset %d points to a node line", ErrMalformedLine, self.Offset)
		}
		return decodeLeafPayload(dl.leaf)
	default:
		return nil, false, nil
	}
}

func decodeLeafPayload(raw json.RawMessage) (Payload, bool, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("pathmap: decode leaf payload: %w", err)
	}
	return payload, true, nil
}

package pathmap

import "errors"

// Sentinel errors returned by the trie, writer, and reader. Callers should
// use errors.Is against these rather than matching error strings.
var (
	// ErrPathShape is returned when a path argument does not start with "/".
	ErrPathShape = errors.New("pathmap: path must start with /")

	// ErrMalformedLine is returned by the node-line decoder when it
	// encounters an unknown starter byte, a pending key with no value
	// marker, a stray value marker with no pending key, or an unterminated
	// escape sequence.
	ErrMalformedLine = errors.New("pathmap: malformed node line")

	// ErrUnexpectedEOF is returned when the reader scans past the end of
	// the buffer looking for a line terminator, or when it is constructed
	// from a buffer containing no complete line.
	ErrUnexpectedEOF = errors.New("pathmap: unexpected end of file")

	// ErrUnexpectedPayload is returned when the line at the reader's root
	// offset is a JSON leaf value instead of a node line. A leaf reached
	// mid-path with segments still left is not an error: Find reports the
	// path as absent.
	ErrUnexpectedPayload = errors.New("pathmap: expected node line, found leaf payload")
)

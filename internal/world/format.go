package world

import "fmt"

// Wire constants shared by the encoder and decoder. The engine loader
// matches these byte-for-byte; changing any of them invalidates every
// world file already shipped.
var (
	magicBytes = [4]byte{0xfa, 0xde, 0x00, 0xff} // file signature
	recordMark = [2]byte{0xfe, 0xed}             // precedes each object record
	permMark   = [2]byte{0xda, 0xd7}             // permission block follows
	permAbsent = [2]byte{0x00, 0x00}             // no permission block
)

const (
	padLen    = 6      // zero bytes between terrain and records in v1
	recordLen = 6      // marker + kind + id + x + y
	maxByte   = 0xff   // largest value a one-byte field can hold
	maxString = 0xffff // largest byte length a string field can hold
)

// Format selects one of the two on-disk layouts. Files carry no version
// byte, so the encoder and the decoder must both be told which layout a
// stream uses.
type Format uint8

const (
	// FormatV1 is the original layout: header, terrain, six zero pad
	// bytes, object records.
	FormatV1 Format = iota
	// FormatV2 drops the pad and inserts a permission block before the
	// terrain and four length-prefixed strings after it.
	FormatV2
)

// String returns the flag-style name of the format.
func (f Format) String() string {
	switch f {
	case FormatV1:
		return "v1"
	case FormatV2:
		return "v2"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "v1":
		return FormatV1, nil
	case "v2":
		return FormatV2, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want v1 or v2)", s)
	}
}

// FieldError reports a value that does not fit the fixed-width wire field
// it was destined for. The encoder fails with one of these rather than
// truncating.
type FieldError struct {
	Field string // wire field name, e.g. "tile id" or "object x"
	Value int    // the offending value
	Max   int    // largest value the field can hold
}

func (e *FieldError) Error() string {
	switch e.Max {
	case maxByte:
		return fmt.Sprintf("%s does not fit in one byte: %d", e.Field, e.Value)
	case maxString:
		return fmt.Sprintf("%s does not fit in two bytes: %d", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s out of range: %d (max %d)", e.Field, e.Value, e.Max)
	}
}

// fitByte validates a value destined for a one-byte wire field.
func fitByte(field string, v int) (byte, error) {
	if v < 0 || v > maxByte {
		return 0, &FieldError{Field: field, Value: v, Max: maxByte}
	}
	return byte(v), nil
}

package timeline

import (
	"encoding/binary"
	"fmt"
	"time"
)

// MaxMarkerIdentifierBytes caps a marker identifier at 512 bytes of UTF-8.
const MaxMarkerIdentifierBytes = 512

// markerHeaderSize is the fixed prefix of a serialized marker: 8 bytes of
// position plus 4 bytes of identifier byte length. The identifier bytes
// follow, so the minimum record size is 12 bytes.
const markerHeaderSize = positionHeaderSize + 4

// Marker is a named timestamp used to delimit animation clips within a
// Timeline. Immutable once created.
type Marker struct {
	// Position is the marker's timestamp on the timeline.
	Position time.Duration

	// Identifier is the marker's unique name within its timeline.
	Identifier string
}

// NewMarker creates a marker, validating the identifier.
//
// Parameters:
//   - position: the marker timestamp
//   - identifier: the marker name (non-empty, at most 512 UTF-8 bytes)
//
// Returns:
//   - Marker: the marker
//   - error: argument error if the identifier is empty or oversized
func NewMarker(position time.Duration, identifier string) (Marker, error) {
	if identifier == "" {
		return Marker{}, fmt.Errorf("marker identifier must not be empty")
	}
	if len(identifier) > MaxMarkerIdentifierBytes {
		return Marker{}, fmt.Errorf("marker identifier is %d bytes, limit is %d", len(identifier), MaxMarkerIdentifierBytes)
	}
	return Marker{Position: position, Identifier: identifier}, nil
}

// ToBytes serializes the marker as an 8-byte little-endian nanosecond
// position, a 4-byte little-endian identifier byte length, and the raw
// UTF-8 identifier bytes.
//
// Returns:
//   - []byte: the serialized marker
func (m Marker) ToBytes() []byte {
	buf := make([]byte, markerHeaderSize+len(m.Identifier))
	binary.LittleEndian.PutUint64(buf, uint64(m.Position.Nanoseconds()))
	binary.LittleEndian.PutUint32(buf[positionHeaderSize:], uint32(len(m.Identifier)))
	copy(buf[markerHeaderSize:], m.Identifier)
	return buf
}

// MarkerFromBytes deserializes a marker produced by ToBytes.
//
// Parameters:
//   - data: the serialized marker record
//
// Returns:
//   - Marker: the decoded marker
//   - error: ErrFormat if data is undersized or the identifier length is
//     corrupt or over the 512-byte limit
func MarkerFromBytes(data []byte) (Marker, error) {
	if len(data) < markerHeaderSize {
		return Marker{}, fmt.Errorf("%w: marker record needs at least %d bytes, have %d", ErrFormat, markerHeaderSize, len(data))
	}
	position := time.Duration(int64(binary.LittleEndian.Uint64(data)))
	idLen := binary.LittleEndian.Uint32(data[positionHeaderSize:])
	if idLen == 0 || idLen > MaxMarkerIdentifierBytes {
		return Marker{}, fmt.Errorf("%w: marker identifier length %d out of range (1..%d)", ErrFormat, idLen, MaxMarkerIdentifierBytes)
	}
	if len(data) < markerHeaderSize+int(idLen) {
		return Marker{}, fmt.Errorf("%w: marker record truncated, identifier needs %d bytes", ErrFormat, idLen)
	}
	return Marker{
		Position:   position,
		Identifier: string(data[markerHeaderSize : markerHeaderSize+int(idLen)]),
	}, nil
}

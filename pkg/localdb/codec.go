package localdb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
}

const (
	recordPrefix = 'r'
	metaPrefix   = 'm'
	sep          = 0x00
)

var versionKey = []byte{metaPrefix, sep, 'v'}

func collectionMetaPrefix() []byte {
	return []byte{metaPrefix, sep, 'c', sep}
}

func collectionMetaKey(name string) []byte {
	return append(collectionMetaPrefix(), name...)
}

// recordBounds returns [lower, upper) covering every record of a collection.
func recordBounds(collection string) ([]byte, []byte) {
	lower := make([]byte, 0, len(collection)+3)
	lower = append(lower, recordPrefix, sep)
	lower = append(lower, collection...)
	upper := append(bytes.Clone(lower), sep+1)
	lower = append(lower, sep)
	return lower, upper
}

func recordKey(collection string, key []byte) []byte {
	lower, _ := recordBounds(collection)
	return append(lower, key...)
}

// encodeKey turns key values into an order-preserving byte key. Integers of
// any width share one encoding so 5 and int64(5) address the same record.
func encodeKey(parts []any) ([]byte, error) {
	var buf bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			buf.WriteByte(sep)
		}
		switch v := p.(type) {
		case string:
			buf.WriteByte('s')
			buf.WriteString(v)
		case int:
			writeInt(&buf, int64(v))
		case int32:
			writeInt(&buf, int64(v))
		case int64:
			writeInt(&buf, v)
		case uint64:
			writeInt(&buf, int64(v))
		default:
			return nil, fmt.Errorf("%w: unsupported key type %T", ErrBadKey, p)
		}
	}
	return buf.Bytes(), nil
}

func writeInt(buf *bytes.Buffer, v int64) {
	var b [9]byte
	b[0] = 'i'
	binary.BigEndian.PutUint64(b[1:], uint64(v)^(1<<63))
	buf.Write(b[:])
}

// keyOf extracts the key path values from an encoded record.
func (c Collection) keyOf(encoded []byte) ([]byte, error) {
	var fields map[string]any
	if err := decMode.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s record is not a map: %v", ErrBadKey, c.Name, err)
	}
	parts := make([]any, len(c.KeyPath))
	for i, name := range c.KeyPath {
		v, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s record has no %q", ErrBadKey, c.Name, name)
		}
		parts[i] = v
	}
	return encodeKey(parts)
}

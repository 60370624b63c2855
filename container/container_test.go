package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	meta := []MetadataEntry{{Key: "author", Value: "etca"}, {Key: "note", Value: "test image"}}
	payload := []byte{0x01, 0xAA, 0xBB, 0xCC}

	err := WriteContainer(&buf, 640, 480, ModeLossless, meta, payload)
	require.NoError(t, err)

	got, err := ReadContainer(&buf)
	require.NoError(t, err)
	require.Equal(t, uint32(640), got.Width)
	require.Equal(t, uint32(480), got.Height)
	require.Equal(t, ModeLossless, got.Mode)
	require.Equal(t, byte(colorDepth), got.ColorDepth)
	require.Equal(t, meta, got.Metadata)
	require.Equal(t, payload, got.Payload)
}

func TestWriteReadNoMetadata(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, 10, 10, ModeLossy, nil, []byte{1, 2, 3}))

	got, err := ReadContainer(&buf)
	require.NoError(t, err)
	require.Nil(t, got.Metadata)
	require.Equal(t, []byte{1, 2, 3}, got.Payload)
}

func TestReadBadMagic(t *testing.T) {
	raw := make([]byte, headerSize)
	copy(raw, "XXXX")
	_, err := ReadContainer(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestReadUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, 1, 1, ModeLossy, nil, nil))
	raw := buf.Bytes()
	raw[4] = 0x02
	_, err := ReadContainer(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnsupportedVer)
}

func TestReadZeroDimension(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, 0, 5, ModeLossy, nil, nil))
	_, err := ReadContainer(bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrZeroDimension)
}

func TestReadTruncatedHeader(t *testing.T) {
	_, err := ReadContainer(bytes.NewReader([]byte{'E', 'T', 'C', 'A'}))
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestReadTruncatedMetadata(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, 4, 4, ModeLossy, []MetadataEntry{{Key: "k", Value: "v"}}, []byte{9}))
	raw := buf.Bytes()
	// Truncate one byte into the four-byte metadata block.
	_, err := ReadContainer(bytes.NewReader(raw[:headerSize+1]))
	require.ErrorIs(t, err, ErrTruncatedMeta)
}

func TestMetadataFinalLineWithoutTrailingNewline(t *testing.T) {
	entries, err := decodeMetadata([]byte("a=1\nb=2"))
	require.NoError(t, err)
	require.Equal(t, []MetadataEntry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, entries)
}

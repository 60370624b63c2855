// Package container implements C11: the fixed 20-byte file header plus
// optional metadata block that wraps a C9/C10 payload — magic,
// dimensions, and a scalar mode byte, written big-endian through a plain
// io.Writer/Reader pair rather than a bespoke framing type.
package container

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Mode selects lossy vs lossless framing, per spec §6.1.
type Mode byte

const (
	ModeLossy     Mode = 0x00
	ModeLossless  Mode = 0x01
	headerSize         = 20
	formatVersion      = 0x01
	colorDepth         = 0x18
)

var magic = [4]byte{'E', 'T', 'C', 'A'}

// Sentinel errors, declared at package scope.
var (
	ErrBadMagic        = errors.New("container: bad magic")
	ErrUnsupportedVer  = errors.New("container: unsupported format version")
	ErrZeroDimension   = errors.New("container: width or height is zero")
	ErrTruncatedHeader = errors.New("container: truncated header")
	ErrTruncatedMeta   = errors.New("container: truncated metadata block")
)

// MetadataEntry is one key=value pair. Keys and values must not contain
// '=' or '\n' (spec §6.1).
type MetadataEntry struct {
	Key, Value string
}

// Container is the decoded shape of a file: the fixed header fields plus
// metadata and the still-entropy-encoded payload.
type Container struct {
	Version    byte
	Mode       Mode
	Width      uint32
	Height     uint32
	ColorDepth byte
	Metadata   []MetadataEntry
	Payload    []byte
}

// WriteContainer writes the fixed header, metadata block, and payload in
// the exact layout of spec §6.1.
func WriteContainer(w io.Writer, width, height uint32, mode Mode, metadata []MetadataEntry, payload []byte) error {
	metaBytes := encodeMetadata(metadata)

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	header[4] = formatVersion
	header[5] = byte(mode)
	binary.BigEndian.PutUint32(header[6:10], width)
	binary.BigEndian.PutUint32(header[10:14], height)
	header[14] = colorDepth
	binary.BigEndian.PutUint32(header[15:19], uint32(len(metaBytes)))
	header[19] = 0x00

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}
	if len(metaBytes) > 0 {
		if _, err := w.Write(metaBytes); err != nil {
			return fmt.Errorf("container: write metadata: %w", err)
		}
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("container: write payload: %w", err)
	}
	return nil
}

// ReadContainer parses a header, metadata block, and payload from r.
// Malformed input (bad magic, unsupported version, zero dimensions,
// truncated header or metadata) is reported as an error per spec §7's
// "Input malformed" class — these are the strict checks this layer
// performs that the core codec does not.
func ReadContainer(r io.Reader) (*Container, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrTruncatedHeader
		}
		return nil, fmt.Errorf("container: read header: %w", err)
	}

	if !bytes.Equal(header[0:4], magic[:]) {
		return nil, ErrBadMagic
	}
	version := header[4]
	if version != formatVersion {
		return nil, ErrUnsupportedVer
	}
	mode := Mode(header[5])
	width := binary.BigEndian.Uint32(header[6:10])
	height := binary.BigEndian.Uint32(header[10:14])
	if width == 0 || height == 0 {
		return nil, ErrZeroDimension
	}
	depth := header[14]
	metaLen := binary.BigEndian.Uint32(header[15:19])

	metaBytes := make([]byte, metaLen)
	if metaLen > 0 {
		if _, err := io.ReadFull(r, metaBytes); err != nil {
			return nil, ErrTruncatedMeta
		}
	}
	metadata, err := decodeMetadata(metaBytes)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("container: read payload: %w", err)
	}

	return &Container{
		Version:    version,
		Mode:       mode,
		Width:      width,
		Height:     height,
		ColorDepth: depth,
		Metadata:   metadata,
		Payload:    payload,
	}, nil
}

func encodeMetadata(entries []MetadataEntry) []byte {
	if len(entries) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Key)
		buf.WriteByte('=')
		buf.WriteString(e.Value)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// decodeMetadata parses key=value lines. The final line may or may not
// carry a trailing '\n' per spec §6.1.
func decodeMetadata(data []byte) ([]MetadataEntry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []MetadataEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("container: malformed metadata line %q", line)
		}
		entries = append(entries, MetadataEntry{Key: key, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("container: scan metadata: %w", err)
	}
	return entries, nil
}

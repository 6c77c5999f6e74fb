// Package packet frames messages over byte streams.
//
// A packet is a size prefix followed by that many payload bytes. The
// prefix encoding is pluggable through SizeCodec; the default is a
// 4-byte little-endian integer.
package packet

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// SizeCodec encodes and decodes the size prefix of a packet.
type SizeCodec interface {
	ReadSize(r io.Reader) (int, error)
	WriteSize(w io.Writer, size int) error
}

// BinarySizeCodec encodes the size as a 4-byte little-endian unsigned
// integer. This is the default codec.
type BinarySizeCodec struct{}

func (BinarySizeCodec) ReadSize(r io.Reader) (int, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return 0, err
	}
	return int(size), nil
}

func (BinarySizeCodec) WriteSize(w io.Writer, size int) error {
	if size < 0 {
		return fmt.Errorf("packet: negative size %d", size)
	}
	return binary.Write(w, binary.LittleEndian, uint32(size))
}

// NetStringSizeCodec encodes the size as its decimal representation,
// itself framed by a BinarySizeCodec prefix.
type NetStringSizeCodec struct{}

func (NetStringSizeCodec) ReadSize(r io.Reader) (int, error) {
	data, err := readWith(r, BinarySizeCodec{})
	if err != nil {
		return 0, err
	}
	size, err := strconv.Atoi(string(data))
	if err != nil || size < 0 {
		return 0, fmt.Errorf("packet: bad netstring size %q", data)
	}
	return size, nil
}

func (NetStringSizeCodec) WriteSize(w io.Writer, size int) error {
	return writeWith(w, BinarySizeCodec{}, []byte(strconv.Itoa(size)))
}

// Transport frames packets over an underlying stream. The zero Codec
// means BinarySizeCodec.
type Transport struct {
	RW    io.ReadWriter
	Codec SizeCodec
}

func (t Transport) codec() SizeCodec {
	if t.Codec == nil {
		return BinarySizeCodec{}
	}
	return t.Codec
}

// Write sends one packet carrying data.
func (t Transport) Write(data []byte) error {
	return writeWith(t.RW, t.codec(), data)
}

// Read receives one packet and returns its payload.
func (t Transport) Read() ([]byte, error) {
	return readWith(t.RW, t.codec())
}

// WriteJSON sends one packet carrying the JSON encoding of v.
func (t Transport) WriteJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return t.Write(data)
}

// ReadJSON receives one packet and decodes its payload into v.
func (t Transport) ReadJSON(v any) error {
	data, err := t.Read()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Write sends one packet with the default codec.
func Write(w io.Writer, data []byte) error {
	return writeWith(w, BinarySizeCodec{}, data)
}

// Read receives one packet with the default codec.
func Read(r io.Reader) ([]byte, error) {
	return readWith(r, BinarySizeCodec{})
}

// WriteJSON sends one JSON packet with the default codec.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return Write(w, data)
}

// ReadJSON receives one JSON packet with the default codec.
func ReadJSON(r io.Reader, v any) error {
	data, err := Read(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeWith(w io.Writer, codec SizeCodec, data []byte) error {
	if err := codec.WriteSize(w, len(data)); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func readWith(r io.Reader, codec SizeCodec) ([]byte, error) {
	size, err := codec.ReadSize(r)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

package packet

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// B64SizeCodec encodes the size as a base64 string of its big-endian
// byte representation, right-padded with '=' to a fixed width so the
// reader knows how many bytes to consume.
type B64SizeCodec struct {
	// SizeLength is the fixed width of the encoded prefix in bytes.
	SizeLength int
}

func (c B64SizeCodec) ReadSize(r io.Reader) (int, error) {
	buf := make([]byte, c.SizeLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(string(buf), "="))
	if err != nil || len(raw) > 8 {
		return 0, fmt.Errorf("packet: bad base64 size %q", buf)
	}
	size := 0
	for _, b := range raw {
		size = size<<8 | int(b)
	}
	return size, nil
}

func (c B64SizeCodec) WriteSize(w io.Writer, size int) error {
	if size < 0 {
		return fmt.Errorf("packet: negative size %d", size)
	}
	var raw []byte
	for s := size; s > 0; s >>= 8 {
		raw = append([]byte{byte(s)}, raw...)
	}
	enc := base64.RawStdEncoding.EncodeToString(raw)
	if len(enc) > c.SizeLength {
		return fmt.Errorf("packet: size %d does not fit in %d bytes", size, c.SizeLength)
	}
	enc += strings.Repeat("=", c.SizeLength-len(enc))
	_, err := io.WriteString(w, enc)
	return err
}

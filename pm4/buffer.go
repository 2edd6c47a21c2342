package pm4

import (
	"encoding/binary"
	"errors"
)

// ErrBufferAlign is a binary buffer whose length is not a word multiple.
var ErrBufferAlign = errors.New(f("buffer length not word aligned"))

// Bytes encodes a command buffer as little-endian bytes, the on-disk and
// wire representation.
func Bytes(words []uint32) (data []byte) {
	data = make([]byte, 0, len(words)*4)
	for _, word := range words {
		data = binary.LittleEndian.AppendUint32(data, word)
	}
	return
}

// Words decodes a little-endian byte image into a command buffer.
func Words(data []byte) (words []uint32, err error) {
	if len(data)%4 != 0 {
		err = ErrBufferAlign
		return
	}

	words = make([]uint32, len(data)/4)
	for n := range words {
		words[n] = binary.LittleEndian.Uint32(data[n*4:])
	}
	return
}

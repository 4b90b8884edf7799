package speech

import (
	"bytes"
	"encoding/binary"
)

// wavFile wraps 16 kHz 16-bit mono PCM in a RIFF/WAVE header.
func wavFile(pcm []byte) []byte {
	const (
		channels   = 1
		bitsPerSmp = bytesPerSample * 8
		byteRate   = sampleRate * channels * bytesPerSample
		blockAlign = channels * bytesPerSample
	)
	var b bytes.Buffer
	b.Grow(44 + len(pcm))

	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&b, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&b, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&b, binary.LittleEndian, uint16(bitsPerSmp))

	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(pcm)))
	b.Write(pcm)
	return b.Bytes()
}

package assets

import (
	"encoding/binary"
	"math"
	"time"
)

// BounceClick synthesizes a short decaying tone as 16-bit little-endian
// stereo PCM, the layout ebiten's audio players read.
func BounceClick(sampleRate int, freq float64, duration time.Duration) []byte {
	n := int(float64(sampleRate) * duration.Seconds())
	if n <= 0 || sampleRate <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)
	decay := 6.0 / float64(n)
	for i := 0; i < n; i++ {
		env := math.Exp(-decay * float64(i))
		val := int16(math.Sin(phaseStep*float64(i)) * env * 0.4 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(val))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(val))
	}
	return buf
}

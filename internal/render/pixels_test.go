package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	assert.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}

func TestMarkColumn(t *testing.T) {
	buf := make([]byte, 2*2*4)
	fillBinaryRGBA(buf, []uint8{0, 1, 0, 1}, color.White, color.Black)
	markColumn(buf, 2, 1, color.RGBA{R: 255, A: 255})

	assert.Equal(t, []byte{0, 0, 0, 255}, buf[0:4])
	assert.Equal(t, []byte{255, 127, 127, 255}, buf[4:8])
	assert.Equal(t, []byte{0, 0, 0, 255}, buf[8:12])
	assert.Equal(t, []byte{255, 127, 127, 255}, buf[12:16])

	before := append([]byte(nil), buf...)
	markColumn(buf, 2, 5, color.RGBA{G: 255})
	assert.Equal(t, before, buf)
}

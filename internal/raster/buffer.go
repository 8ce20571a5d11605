package raster

// FrameBuffer holds the render target as one flat pixel slice for
// cache locality. Pixels are packed 0xAARRGGBB.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFrameBuffer allocates a zeroed pixel buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}
}

// Row returns the pixel slice for scanline y.
func (f *FrameBuffer) Row(y int) []uint32 {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// RGBABytes repacks the buffer into byte-interleaved RGBA, the layout
// image encoders and window surfaces want. dst is reused when its
// capacity suffices; pass nil to allocate.
func (f *FrameBuffer) RGBABytes(dst []byte) []byte {
	n := len(f.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, px := range f.Pix {
		dst[i*4+0] = uint8(px >> 16)
		dst[i*4+1] = uint8(px >> 8)
		dst[i*4+2] = uint8(px)
		dst[i*4+3] = uint8(px >> 24)
	}
	return dst
}

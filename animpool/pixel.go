package animpool

// ConvertPixels converts premultiplied B-G-R-A pixels in src into
// straight-alpha R-G-B-A pixels in dst. Fully transparent pixels become
// zero. Only whole pixels present in both buffers are written.
func ConvertPixels(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		b, g, r, a := src[i], src[i+1], src[i+2], src[i+3]
		if a == 0 {
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
			continue
		}
		dst[i] = unpremultiply(r, a)
		dst[i+1] = unpremultiply(g, a)
		dst[i+2] = unpremultiply(b, a)
		dst[i+3] = a
	}
}

func unpremultiply(c, a byte) byte {
	v := int(c) * 255 / int(a)
	if v > 255 {
		v = 255
	}
	return byte(v)
}

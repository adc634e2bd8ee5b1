package shading

// bayer is the 8x8 ordered-dither threshold matrix, a permutation of 0..63
// tiled across the image. Kept as a fixed table rather than regenerated so
// output stays bit-for-bit reproducible.
var bayer = [8][8]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// Threshold returns the raw matrix value for a pixel, periodic with period 8
// in both axes.
func Threshold(px, py int) uint8 {
	return bayer[py%8][px%8]
}

// DitherOffset is the additive perturbation for a pixel: the matrix value
// normalized to [0,1) and recentered, scaled to at most about half an 8-bit
// quantization step. It depends only on the pixel coordinate, never on frame
// or light state, so dithering is stable across frames.
func DitherOffset(px, py int) float32 {
	return (float32(Threshold(px, py))/64 - 0.5) / 255
}

package pix

import "errors"

// Common errors for packed raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrBadDepth is returned when a depth is not one of 1, 2, 4, 8, 16, 32,
	// or when an operation does not support the image's depth.
	ErrBadDepth = errors.New("pix: unsupported depth")

	// ErrDepthMismatch is returned when two operands of a raster operation
	// have different depths.
	ErrDepthMismatch = errors.New("pix: operand depths differ")

	// ErrSizeMismatch is returned when an operation requires operands of
	// exactly equal size. Operations that can degrade to the intersection
	// log a warning instead.
	ErrSizeMismatch = errors.New("pix: operand sizes differ")

	// ErrDataTooSmall is returned when a raw data slice is smaller than
	// the dimensions require.
	ErrDataTooSmall = errors.New("pix: data buffer too small")

	// ErrMissingBuffer is returned when a required image is nil.
	ErrMissingBuffer = errors.New("pix: nil image")

	// ErrOutOfBounds is returned when pixel coordinates are outside the
	// image.
	ErrOutOfBounds = errors.New("pix: coordinates out of bounds")

	// ErrColormapped is returned when an operation cannot accept a
	// colormapped image.
	ErrColormapped = errors.New("pix: colormapped image not supported")

	// ErrBadSamplingFactor is returned when a subsampling factor is < 1.
	ErrBadSamplingFactor = errors.New("pix: sampling factor must be >= 1")

	// ErrBadRank is returned when a rank value is outside [0.0, 1.0].
	ErrBadRank = errors.New("pix: rank not in [0.0, 1.0]")

	// ErrNoSamples is returned when an operation finds no pixels to work
	// with, for example a mask with no foreground.
	ErrNoSamples = errors.New("pix: no pixels sampled")

	// ErrDegenerateTransform is returned when transform control points
	// produce a singular system with no usable solution.
	ErrDegenerateTransform = errors.New("pix: degenerate transform")

	// ErrBadFactor is returned when a scale factor or level count is
	// outside its supported range.
	ErrBadFactor = errors.New("pix: unsupported scale factor")

	// ErrBadStat is returned when a statistic or extremum selector is not
	// one of the defined values, or not supported by the operation.
	ErrBadStat = errors.New("pix: invalid statistic type")

	// ErrBadFill is returned when a fill color selector is not FillWhite
	// or FillBlack.
	ErrBadFill = errors.New("pix: invalid fill color")

	// ErrBadPixelOp is returned when a pixel op selector is outside the
	// set an operation accepts.
	ErrBadPixelOp = errors.New("pix: invalid pixel op")

	// ErrBadDirection is returned when a rotation direction is not
	// RotateCW or RotateCCW.
	ErrBadDirection = errors.New("pix: invalid rotation direction")
)

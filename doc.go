// Package pix provides packed raster images and low-level image processing
// for Go.
//
// # Overview
//
// pix stores images at depths of 1, 2, 4, 8, 16 and 32 bits per pixel in
// 32-bit words, with pixels packed MSB-first within each word. On top of
// that representation it implements boolean raster operations, masked
// painting, pixel counting and statistics, error-diffusion dithering,
// orthogonal rotations and flips, binary scaling, bilinear warping, and
// line, box and polyline rendering. FromImage and ToImage bridge to the
// standard library image types, and the pixio subpackage serializes
// images to a compressed stream format.
//
// # Quick Start
//
//	import "github.com/gopix/pix"
//
//	// Create a 1 bpp image and set some pixels
//	p, err := pix.New(640, 480, pix.D1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.SetPixel(10, 20, 1)
//
//	// Dither an 8 bpp grayscale image down to binary
//	bin, err := pix.DitherToBinary(gray)
//
//	// Count the foreground
//	n, err := bin.CountPixels()
//
// # Pixel Packing
//
// Rows are padded to a whole number of 32-bit words. Within a word the
// leftmost pixel occupies the most significant bits, so a 1 bpp image
// serializes in the same order a fax machine would scan it. Pad bits
// past the row end may hold anything; operations that read whole words
// mask them out, and SetPadBits normalizes them explicitly.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - For 1 bpp, pixel value 1 is foreground (black), 0 is background
//
// # Concurrency
//
// Operations are single-threaded and deterministic. Distinct images may
// be processed from distinct goroutines; sharing one image across
// goroutines requires external synchronization.
//
// # Logging
//
// By default the package is silent. Operations that degrade rather than
// fail (size-mismatched operands clipped to their intersection,
// out-of-range values clamped) report through a package logger
// configurable with SetLogger.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Package tcolour models RGBA colour values and colour gradients for
// compositing and procedural image generation.
//
// It provides channel arithmetic over an unclamped float64 colour, a set of
// photo-editing blend modes with "over" alpha compositing, and gradient
// sampling over an ordered stop list. All operations are deterministic pure
// functions of their inputs (or mutate only their receiver), so independent
// colours and gradients are safe to use from many goroutines without
// coordination.
//
// Invalid numeric states (NaN, infinities, subnormals) arising from
// arithmetic are tolerated rather than reported; Cleaned recovers them on
// demand, and Blend applies it to the blended channels automatically before
// compositing.
//
// The terminal subpackage adapts colours to and from tcell's colour model,
// including the xterm-256 indexed palette.
package tcolour

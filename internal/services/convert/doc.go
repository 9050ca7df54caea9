// Package convert orchestrates the GPX-to-plan pipeline:
// parse, bounding-box filter, downsample, build, save.
package convert

// Package widget draws small real-time instruments on a pixel display: a
// scrolling line-trace (Graph) and a segmented radial gauge (SegGauge).
//
// Widgets only compute geometry. All pixels go through a Driver, so the same
// code runs against a hardware panel, a host framebuffer or a recorder in
// tests. Construction validates configuration; Draw never fails.
package widget

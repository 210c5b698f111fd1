// Package crosshair highlights the screen row and column containing the
// cursor and echoes the cursor's offset in the status area.
//
// The package is a coordination layer: the actual shading, the scrollbar,
// the idle popup delay, and the echo area are host facilities (see
// internal/host). The Manager owns one small state record per view and
// drives those facilities through three activation lifetimes:
//
//   - until explicitly toggled off
//   - until the next input event (frame switches excepted)
//   - for a fixed duration
//
// Activation always runs a full deactivation first, so repeated or
// interleaved activations never layer conflicting highlight styles.
package crosshair

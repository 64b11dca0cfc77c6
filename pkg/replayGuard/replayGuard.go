package replayGuard

import "time"

// DefaultWindow is how far a payload timestamp may drift from server time,
// in either direction, before the relay is refused.
const DefaultWindow = 300 * time.Second

// Check reports whether a payload issued at issuedAt (unix seconds) is fresh
// relative to now: |now - issuedAt| <= window. The window is symmetric since
// client clocks can run ahead of the server as easily as behind it.
//
// This is a pure freshness bound, not a dedup registry. An identical signed
// payload replayed inside the window passes again; see the nonce-registry
// note in DESIGN.md.
func Check(issuedAt, now int64, window time.Duration) bool {
	skew := now - issuedAt
	if skew < 0 {
		skew = -skew
	}
	return skew <= int64(window/time.Second)
}

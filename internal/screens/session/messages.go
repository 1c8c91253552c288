package session

// dwellMsg fires when the feedback dwell interval elapses. The sequence
// number ties it to one specific feedback display; a tick carrying a
// stale sequence is dropped, so leaving feedback early can never cause a
// double advance.
type dwellMsg struct {
	seq int
}

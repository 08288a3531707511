package utils

import "runtime"

// Stack returns a formatted stack trace of the calling goroutine,
// skipping nothing. skip is kept for call sites that want to trim
// the recover plumbing itself.
func Stack(skip int) []byte {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}

package crypto

import "crypto/subtle"

// Wipe overwrites b with zeros. Best-effort: Go may have copied the
// bytes elsewhere already.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

package types

// StateCode is the reduced output of the three composed models.
// It is always in [0, modulus) where the modulus defaults to 7.
type StateCode int

// Int returns the code as a plain int.
func (c StateCode) Int() int { return int(c) }

// Fingerprint is a short identifier for reports presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ProfileName names a constant profile (for example "linear" or "fixed").
type ProfileName string

// String returns the string form of the profile name.
func (n ProfileName) String() string { return string(n) }

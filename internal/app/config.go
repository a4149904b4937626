package app

import (
	"log/slog"

	"qsvault/internal/crypto"
	"qsvault/internal/domain"
	"qsvault/internal/profile"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Profile    profile.Profile  // constants for every model; zero value means profile.Default()
	Logger     *slog.Logger     // optional; defaults to a discarding logger
	Clock      domain.Clock     // optional; defaults to clock.System
	Passphrase string           // seals exported reports when set
	KDF        crypto.KDFParams // zero value means crypto.DefaultKDFParams()
}

package chachagen

// Options are optional settings of a Generator. A nil *Options means
// the defaults.
type Options struct {
	// Rounds is the number of ChaCha rounds (8, 12 or 20).
	//
	// The default value is DefaultRounds.
	Rounds *uint

	// KeystreamSourceFactory creates the keystream source for a
	// key/nonce pair.
	//
	// The default value is NewChaChaSource.
	KeystreamSourceFactory KeystreamSourceFactory

	// Logger receives informational and debug messages.
	//
	// By default nothing is logged.
	Logger Logger
}

func (opts *Options) normalize() Options {
	var result Options
	if opts != nil {
		result = *opts
	}
	if result.Rounds == nil {
		result.Rounds = &[]uint{DefaultRounds}[0]
	}
	if result.KeystreamSourceFactory == nil {
		result.KeystreamSourceFactory = NewChaChaSource
	}
	if result.Logger == nil {
		result.Logger = &dummyLogger{}
	}
	return result
}

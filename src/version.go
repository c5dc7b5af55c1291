package access

// Set at build time via
// `-ldflags "-X 'github.com/oasis1701/arma3access/src.EngineVersion=X'"`,
// in the same style as the teacher's SAMOYED_VERSION.
var EngineVersion string

// defaultVersion is returned by Version() when no build-time override
// was supplied, grounded on the reference bridge's hard-coded
// `static const char* VERSION = "1.0.0";`.
const defaultVersion = "1.0.0"

// Version implements the version-query entry point of the extension
// ABI (spec §6): it writes nothing but returns the short string the
// host places directly in its output buffer.
func (e *Engine) Version() string {
	if EngineVersion != "" {
		return EngineVersion
	}

	return defaultVersion
}

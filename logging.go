package hapcodec

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// SetLogger replaces the package-wide zerolog logger used by hapcodec
// and its internal packages (unrecognized complex sub-sections, legacy
// chunk-compressor bytes). The default logs to stderr at zerolog's
// default level.
func SetLogger(l zerolog.Logger) {
	log.Logger = l
}

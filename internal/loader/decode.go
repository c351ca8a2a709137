package loader

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is the terminal input error for a load: the file could not be
// decoded under any attempted encoding. Callers must not proceed to
// aggregation when they see it.
var ErrUndecodable = eris.New("loader: file not decodable with any supported encoding")

// fallbackEncodings are tried, in order, when the raw bytes are not valid
// UTF-8. Exports saved through Excel on Windows typically arrive as cp1252.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// decode converts raw file bytes to a UTF-8 string, attempting UTF-8 first
// and then each fallback encoding. Returns ErrUndecodable when every attempt
// fails.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, fb := range fallbackEncodings {
		out, err := fb.enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		// Charmap decoders substitute the replacement rune for bytes the
		// encoding does not define; treat that as a failed attempt so the
		// next encoding gets a chance.
		if fb.name == "windows-1252" && strings.ContainsRune(string(out), utf8.RuneError) {
			continue
		}
		zap.L().Debug("loader: decoded with fallback encoding",
			zap.String("encoding", fb.name),
		)
		return string(out), nil
	}

	return "", ErrUndecodable
}

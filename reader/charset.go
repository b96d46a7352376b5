package reader

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/c360/linestream/errors"
)

// LookupCharset resolves an IANA character set name to its encoding. The
// empty string and UTF-8 aliases return nil, meaning the source needs no
// transcoding. An unresolvable name is a configuration error raised
// before any parsing starts.
func LookupCharset(name string) (encoding.Encoding, error) {
	switch {
	case name == "", strings.EqualFold(name, "UTF-8"), strings.EqualFold(name, "UTF8"):
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex returns a nil encoding for names it recognizes but
		// cannot decode; both cases are equally unusable here.
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCharset, name)
	}
	return enc, nil
}

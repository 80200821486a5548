package config

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var currentCharMap *charmap.Charmap = charmap.Windows1252

func findCharmap(name string) (*charmap.Charmap, error) {
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			if cm.String() == name {
				return cm, nil
			}
		}
	}
	return nil, errors.Errorf("Failed to find encoding %q", name)
}

// SetEncoding selects the charmap sources are decoded with.
func SetEncoding(name string) error {
	cm, err := findCharmap(name)
	if err != nil {
		return err
	}
	currentCharMap = cm
	return nil
}

func ListEncodings() []string {
	list := make([]string, 0)
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			list = append(list, cm.String())
		}
	}
	return list
}

func GetEncoding() *charmap.Charmap {
	return currentCharMap
}

// DecodingReader converts source bytes from the current charmap to UTF-8.
// A leading byte order mark overrides the charmap and is dropped.
func DecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(currentCharMap.NewDecoder()))
}

package catalogue

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/civmc-shops/shopdex/internal/domain/market"
)

// FileSource loads the base catalogue from a JSON file. An empty path falls
// back to the embedded demo catalogue.
type FileSource struct {
	Path string
}

// NewFileSource creates a catalogue source for the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the catalogue. Each call returns a fresh slice.
func (s *FileSource) Load() ([]market.Shop, error) {
	data := defaultShops
	if s.Path != "" {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalogue %s: %w", s.Path, err)
		}
		data = b
	}

	var shops []market.Shop
	if err := json.Unmarshal(data, &shops); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	return shops, nil
}

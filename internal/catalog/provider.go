package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

// Provider supplies the ordered list of POC descriptors.
type Provider interface {
	List(ctx context.Context) ([]POC, error)
}

type catalogFile struct {
	POCs []POC `json:"pocs"`
}

// FileProvider reads the catalog from a JSON file on every request. The file
// is never mutated at runtime, so concurrent reads are collapsed through
// singleflight instead of cached.
type FileProvider struct {
	path     string
	validate *validator.Validate
	group    singleflight.Group
}

// NewFileProvider constructs a provider backed by the given JSON file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path, validate: validator.New()}
}

// List returns every descriptor in file order.
func (p *FileProvider) List(ctx context.Context) ([]POC, error) {
	v, err, _ := p.group.Do(p.path, func() (any, error) {
		return p.load()
	})
	if err != nil {
		return nil, err
	}
	return v.([]POC), nil
}

func (p *FileProvider) load() ([]POC, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(file.POCs))
	for i, poc := range file.POCs {
		if err := p.validate.Struct(poc); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := seen[poc.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, poc.ID)
		}
		seen[poc.ID] = struct{}{}
	}
	return file.POCs, nil
}

var _ Provider = (*FileProvider)(nil)

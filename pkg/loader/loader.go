package loader

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/kraitsura/lelscale/pkg/logging"
	"github.com/kraitsura/lelscale/pkg/model"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ErrEmptyCatalog is returned when no valid gas survives loading.
var ErrEmptyCatalog = errors.New("catalog contains no valid gases")

type catalogFile struct {
	Gases []model.Gas `yaml:"gases"`
}

// LoadDefaultCatalog parses the built-in gas table.
func LoadDefaultCatalog() (*model.Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog loads the catalog at path, or the built-in one when path is empty.
func LoadCatalog(path string) (*model.Catalog, error) {
	if path == "" {
		return LoadDefaultCatalog()
	}
	return LoadCatalogFromFile(path)
}

// LoadCatalogFromFile reads a YAML catalog from disk.
func LoadCatalogFromFile(path string) (*model.Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no gas catalog found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a YAML catalog. Malformed profiles are dropped and
// logged; the rest of the catalog is kept. Unknown keys are an error so
// typos like "uell" do not silently produce a zero UEL.
func ParseCatalog(data []byte) (*model.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c, err := model.NewCatalog(f.Gases)
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				logging.Warnw("skipping gas profile", "error", e.Error())
			}
		} else {
			logging.Warnw("skipping gas profiles", "error", err.Error())
		}
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	logging.Debugw("catalog parsed", "gases", c.Len(), "rejected", len(f.Gases)-c.Len())
	return c, nil
}

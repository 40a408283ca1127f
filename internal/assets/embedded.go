package assets

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed styles/*.css templates/*.html
var bundled embed.FS

// EmbeddedLoader serves the stylesheets and page template compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader over the bundled assets.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: bundled}
}

// LoadStyle implements AssetLoader.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate implements AssetLoader.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := fs.ReadFile(e.fsys, kind.file(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", kind.missing(name)
		}
		return "", errors.Join(ErrAssetRead, err)
	}
	return string(content), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)

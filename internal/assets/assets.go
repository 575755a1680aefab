// Package assets loads the bundled core images and user-supplied faces and
// backgrounds.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for user images
	_ "image/png"  // PNG decoder for bundled and user images
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/paint-hit/internal/core"
)

//go:embed bundled/*.png
var bundled embed.FS

var (
	// ErrInvalidExtension is returned for files that are not .png, .jpg or .jpeg.
	ErrInvalidExtension = errors.New("assets: invalid file extension")
	// ErrMissingCoreAsset is returned when a required bundled image is absent
	// or cannot be decoded.
	ErrMissingCoreAsset = errors.New("assets: missing core asset")
)

// Image is a decoded bitmap plus where it came from.
// Images are shared read-only between targets and front ends.
type Image struct {
	Name   string
	Path   string
	Width  int
	Height int
	Img    image.Image
}

// Size returns the image dimensions in viewport units.
func (i *Image) Size() (float64, float64) {
	return float64(i.Width), float64(i.Height)
}

// Core asset file names.
const (
	GunFile         = "gun.png"
	SilhouetteFile  = "silhouette.png"
	BullseyeFile    = "target.png"
	PlaceholderFile = "question_mark.png"
	BackgroundFile  = "background.png"
)

// SplatFile returns the file name of the splat for a paint color.
func SplatFile(c core.PaintColor) string {
	return "splat_" + c.String() + ".png"
}

// Catalog holds the images every session needs.
type Catalog struct {
	Gun         *Image
	Silhouette  *Image
	Bullseye    *Image
	Placeholder *Image
	Splats      map[core.PaintColor]*Image
	Background  *Image // Optional default background; nil means a solid color
}

// Bundled returns the embedded core asset directory.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "bundled")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return sub
}

// LoadCatalog decodes the core assets from fsys. Any missing core asset is
// an ErrMissingCoreAsset error; the background is optional.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	load := func(name string) (*Image, error) {
		img, err := decodeFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingCoreAsset, name, err)
		}
		return img, nil
	}

	c := &Catalog{Splats: make(map[core.PaintColor]*Image, len(core.PaintColors))}
	var err error
	if c.Gun, err = load(GunFile); err != nil {
		return nil, err
	}
	if c.Silhouette, err = load(SilhouetteFile); err != nil {
		return nil, err
	}
	if c.Bullseye, err = load(BullseyeFile); err != nil {
		return nil, err
	}
	if c.Placeholder, err = load(PlaceholderFile); err != nil {
		return nil, err
	}
	for _, pc := range core.PaintColors {
		img, err := load(SplatFile(pc))
		if err != nil {
			return nil, err
		}
		c.Splats[pc] = img
	}

	if bg, err := decodeFS(fsys, BackgroundFile); err == nil {
		c.Background = bg
	}
	return c, nil
}

func decodeFS(fsys fs.FS, name string) (*Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, name, name)
}

// Decode reads a PNG or JPEG image.
func Decode(r io.Reader, name, path string) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Image{
		Name:   name,
		Path:   path,
		Width:  b.Dx(),
		Height: b.Dy(),
		Img:    img,
	}, nil
}

// IsValidImage reports whether path has a supported image extension.
func IsValidImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// LoadUserImage loads a face or background chosen by the player.
// Errors are recoverable: ErrInvalidExtension before any I/O, otherwise a
// wrapped read or decode error.
func LoadUserImage(path string) (*Image, error) {
	if !IsValidImage(path) {
		return nil, ErrInvalidExtension
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, filepath.Base(path), path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

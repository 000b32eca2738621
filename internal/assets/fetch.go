package assets

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Fetcher resolves a locator to a decoded image.
type Fetcher interface {
	Fetch(locator string) (image.Image, error)
}

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc func(locator string) (image.Image, error)

func (fn FetcherFunc) Fetch(locator string) (image.Image, error) {
	return fn(locator)
}

// DirFetcher reads slash-separated locators relative to Root on disk.
type DirFetcher struct {
	Root string
}

func (d DirFetcher) Fetch(locator string) (image.Image, error) {
	f, err := os.Open(filepath.Join(d.Root, filepath.FromSlash(locator)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", locator, err)
	}
	defer f.Close()
	return decode(locator, f)
}

// FSFetcher reads locators from an fs.FS such as an embed.FS.
type FSFetcher struct {
	FS fs.FS
}

func (s FSFetcher) Fetch(locator string) (image.Image, error) {
	f, err := s.FS.Open(path.Clean(locator))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", locator, err)
	}
	defer f.Close()
	return decode(locator, f)
}

func decode(locator string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}
	return img, nil
}

package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// Save encodes img as PNG at path, creating parent directories as needed.
//
// The format is chosen from the file extension, so path should end in ".png".
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// ImageCache keeps rendered images in memory keyed by file path.
//
// Images written by the render pipeline are stored directly with Store, so
// later inspections of the same output do not decode it from disk again.
// Images not yet cached are read with Load.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the cached image for path, reading and decoding the file on a
// cache miss.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.Store(path, img)
	return img, nil
}

// Store records img as the current content of path. A later render to the
// same path replaces it.
func (c *ImageCache) Store(path string, img image.Image) {
	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()
}

// Evict removes the image cached for path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// FileInfo describes an image written to disk.
type FileInfo struct {
	Path          string `json:"path"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// Stat returns the dimensions of img together with the on-disk size of the
// file at path.
func Stat(img image.Image, path string) (*FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return &FileInfo{
		Path:          path,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		FileSizeBytes: st.Size(),
	}, nil
}

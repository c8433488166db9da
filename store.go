package roomview

import (
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/bodgit/roomview/photo"
	"github.com/bodgit/roomview/sprite"
)

// Store loads room photos and object images. Object images are shared
// between every placement so identical files are only kept once.
type Store struct {
	logger *log.Logger

	mu      sync.Mutex
	objects map[string]*sprite.Image
}

// NewStore returns an empty Store.
func NewStore(logger *log.Logger) *Store {
	return &Store{
		logger:  logger,
		objects: make(map[string]*sprite.Image),
	}
}

// LoadPhoto reads and quantizes the room photo in file. The photo is not
// shared; each call returns a new one.
func (s *Store) LoadPhoto(file string) (*photo.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := photo.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	s.logger.Printf("Loaded photo \"%s\", %dx%d\n", file, p.Width, p.Height)

	return p, nil
}

// LoadPixels reads the room photo in file without quantizing it.
func (s *Store) LoadPixels(file string) (*photo.Pixels, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := photo.DecodePixels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return p, nil
}

// LoadObject reads the object image in file. If an image with identical
// contents has already been loaded that image is returned instead.
func (s *Store) LoadObject(file string) (*sprite.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha1.New()
	m, err := sprite.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.objects[sha]; ok {
		s.logger.Printf("Reusing object \"%s\" with SHA1 \"%s\"\n", file, sha)
		return existing, nil
	}
	s.objects[sha] = m
	s.logger.Printf("Loaded object \"%s\", %dx%d\n", file, m.Width, m.Height)

	return m, nil
}

// Objects returns the number of distinct object images loaded.
func (s *Store) Objects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

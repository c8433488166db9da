package roomview

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// PhotoExt is the file extension of room photos
	PhotoExt = ".photo"
	// ObjectExt is the file extension of object images
	ObjectExt = ".obj"
	// PreviewExt is the file extension of generated previews
	PreviewExt = ".png"
)

func (m *RoomView) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(file)) {
			case PhotoExt, ObjectExt:
			default:
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (m *RoomView) preview(file string) (*image.Paletted, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case PhotoExt:
		p, err := m.store.LoadPhoto(file)
		if err != nil {
			return nil, err
		}
		return p.Paletted(), nil
	case ObjectExt:
		o, err := m.store.LoadObject(file)
		if err != nil {
			return nil, err
		}
		return o.Paletted(), nil
	}
	return nil, errors.New("unknown file type")
}

func (m *RoomView) fileWorker(ctx context.Context, in <-chan string, scale int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			pm, err := m.preview(file)
			if err != nil {
				errc <- err
				return
			}

			// Keep the source extension so a photo and an object with
			// the same name get separate previews
			out := file + PreviewExt
			if err := WritePNG(out, pm, scale); err != nil {
				errc <- err
				return
			}
			m.logger.Printf("Wrote \"%s\"\n", out)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Convert walks path writing a PNG preview alongside every room photo and
// object image found, using the given number of workers.
func (m *RoomView) Convert(path string, workers, scale int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := m.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := m.fileWorker(ctx, files, scale)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

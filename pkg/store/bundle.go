package store

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/pagemint/pagemint/render"
)

// WriteBundle stores every file of a rendered bundle under
// "<name>/<path>". Write failures are aggregated so a partial write
// reports every failed file at once.
func WriteBundle(ctx context.Context, s Storage, name string, site render.Site) error {
	var err error
	for _, path := range site.Paths() {
		contents, ok := site[path]
		if !ok {
			err = multierr.Append(err, errors.Errorf("bundle is missing %s", path))
			continue
		}
		if writeErr := s.Write(ctx, name+"/"+path, []byte(contents)); writeErr != nil {
			err = multierr.Append(err, errors.Wrapf(writeErr, "failed to write %s", path))
		}
	}
	return err
}

// ReadBundle loads a previously stored bundle. Returns os.ErrNotExist if
// nothing is stored under the name.
func ReadBundle(ctx context.Context, s Storage, name string) (render.Site, error) {
	keys, err := s.List(ctx, name+"/")
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, os.ErrNotExist
	}
	site := render.Site{}
	for _, key := range keys {
		data, readErr := s.Read(ctx, key)
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "failed to read %s", key)
		}
		site[strings.TrimPrefix(key, name+"/")] = string(data)
	}
	return site, nil
}

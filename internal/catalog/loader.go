// Package catalog fetches the colour scheme catalog and prepares it for the
// reducer: invalid entries dropped, sorted by name, dark flag recorded.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"wtthemes/internal/domain"
)

// FileName is the catalog file expected under the base path.
const FileName = "colour-schemes.json"

var ErrUnexpectedStatus = errors.New("unexpected status")

type Loader struct {
	basePath string
	fs       afero.Fs
	client   *http.Client
	logger   zerolog.Logger
}

type Option func(*Loader)

// WithFs sets the filesystem used for non-HTTP base paths.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// NewLoader reads from basePath, which is either an http(s) URL or a
// directory.
func NewLoader(basePath string, logger zerolog.Logger, opts ...Option) *Loader {
	l := &Loader{
		basePath: strings.TrimSpace(basePath),
		fs:       afero.NewOsFs(),
		client:   http.DefaultClient,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) isRemote() bool {
	return strings.HasPrefix(l.basePath, "http://") || strings.HasPrefix(l.basePath, "https://")
}

// Location is the URL or path the catalog is read from.
func (l *Loader) Location() string {
	if l.isRemote() {
		return strings.TrimRight(l.basePath, "/") + "/" + FileName
	}
	return filepath.Join(l.basePath, FileName)
}

// Load reads, parses and prepares the catalog. Failures are logged and
// returned; nothing is retried.
func (l *Loader) Load(ctx context.Context) ([]*domain.Theme, error) {
	location := l.Location()

	themes, err := l.read(ctx, location)
	if err != nil {
		l.logger.Error().Err(err).Str("location", location).Msg("failed to load theme catalog")
		return nil, err
	}

	themes = Prepare(themes, l.logger)
	l.logger.Info().Str("location", location).Int("themes", len(themes)).Msg("theme catalog loaded")
	return themes, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]*domain.Theme, error) {
	if !l.isRemote() {
		f, err := l.fs.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		return Parse(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return Parse(resp.Body)
}

// Parse decodes a JSON array of schemes.
func Parse(r io.Reader) ([]*domain.Theme, error) {
	var themes []*domain.Theme
	if err := json.NewDecoder(r).Decode(&themes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return themes, nil
}

// Prepare drops entries without a name or background, sorts the rest by
// case-insensitive name and classifies each as dark or light.
func Prepare(themes []*domain.Theme, logger zerolog.Logger) []*domain.Theme {
	out := make([]*domain.Theme, 0, len(themes))
	for i, t := range themes {
		if t == nil {
			logger.Warn().Int("index", i).Msg("skipping null catalog entry")
			continue
		}
		if err := t.Validate(); err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("skipping invalid catalog entry")
			continue
		}
		out = append(out, t)
	}

	domain.SortByName(out)
	for _, t := range out {
		t.Classify()
	}
	return out
}

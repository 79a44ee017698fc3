package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"golang.org/x/sync/errgroup"
)

// imageResolver rewrites image keys to download URLs.
//
// In strict mode the first failure cancels the remaining requests and fails
// the whole batch. In lenient mode a failing note keeps an empty image.
type imageResolver struct {
	blobs   adapter.BlobClient
	lenient bool
	logger  *logger.Logger
}

func newImageResolver(blobs adapter.BlobClient, lenient bool, logger *logger.Logger) *imageResolver {
	return &imageResolver{blobs: blobs, lenient: lenient, logger: logger}
}

// Resolve returns a copy of notes with every non-empty image resolved under
// the identity scope. Input order is preserved and notes is not modified.
func (r *imageResolver) Resolve(ctx context.Context, identityID string, notes []models.Note) ([]models.Note, error) {
	resolved := slices.Clone(notes)
	if resolved == nil {
		resolved = []models.Note{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range resolved {
		if !resolved[i].HasImage() {
			continue
		}

		// each goroutine owns resolved[i]
		g.Go(func() error {
			link, err := r.blobs.GetDownloadURL(gctx, models.MediaPath(identityID, resolved[i].Image))
			if err != nil {
				if r.lenient {
					r.logger.Warn().Err(err).
						Str("func", "imageResolver.Resolve").
						Str("note_id", resolved[i].ID).
						Str("image", resolved[i].Image).
						Msg("image left unresolved")
					resolved[i].Image = ""
					return nil
				}
				return fmt.Errorf("%w: note %s: %w", ErrImageResolutionFailed, resolved[i].ID, mapAdapterError(err))
			}

			resolved[i].Image = link.URL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}

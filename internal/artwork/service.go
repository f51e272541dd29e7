// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package artwork

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

const (
	// DefaultImageBaseURL is the TMDB image CDN root.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	// PosterSize and BackdropSize are the sizes stored in Artwork URLs.
	PosterSize   = "w500"
	BackdropSize = "w1280"

	defaultMaxConcurrency = 8
)

// Searcher finds movies by title and optional year.
// *tmdb.Client and *tmdb.CircuitBreakerClient satisfy it.
type Searcher interface {
	SearchMovie(ctx context.Context, title string, year *int) (*tmdb.SearchResponse, error)
}

// Service resolves poster artwork for films and memoizes the answers.
type Service struct {
	searcher       Searcher
	store          *cache.Memo[*models.Artwork]
	imageBaseURL   string
	maxConcurrency int
	group          singleflight.Group
}

// NewService creates an artwork service. A nil searcher disables lookups:
// every film then has no artwork and nothing is cached.
func NewService(searcher Searcher, store *cache.Memo[*models.Artwork], cfg *config.TMDBConfig) *Service {
	if store == nil {
		store = cache.NewMemo[*models.Artwork]()
	}
	s := &Service{
		searcher:       searcher,
		store:          store,
		imageBaseURL:   DefaultImageBaseURL,
		maxConcurrency: defaultMaxConcurrency,
	}
	if cfg != nil {
		if cfg.ImageBaseURL != "" {
			s.imageBaseURL = strings.TrimRight(cfg.ImageBaseURL, "/")
		}
		if cfg.MaxConcurrency > 0 {
			s.maxConcurrency = cfg.MaxConcurrency
		}
	}
	return s
}

// Enabled reports whether lookups reach TMDB.
func (s *Service) Enabled() bool {
	return s.searcher != nil
}

// Stats returns the memo statistics.
func (s *Service) Stats() cache.Stats {
	return s.store.Stats()
}

// Key returns the memo key for a film: title, a dash, and the year if known.
func Key(title string, year *int) string {
	if year == nil {
		return title + "-"
	}
	return title + "-" + strconv.Itoa(*year)
}

// Lookup returns the artwork of the first TMDB match for title and year, or
// nil when there is none. Answers, including "no match", are memoized per
// key. Failed requests are logged and not memoized, so a later call retries.
// Concurrent misses on the same key share a single request.
func (s *Service) Lookup(ctx context.Context, title string, year *int) *models.Artwork {
	if s.searcher == nil {
		metrics.RecordArtworkLookup(metrics.LookupDisabled)
		return nil
	}

	key := Key(title, year)
	if art, ok := s.store.Get(key); ok {
		metrics.RecordArtworkLookup(metrics.LookupHit)
		return art
	}

	// The flight outlives any single caller: it runs without the caller's
	// cancellation, bounded by the TMDB client timeout, and every waiter
	// stops on its own context.
	flight := s.group.DoChan(key, func() (v interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("artwork search panicked: %v", r)
			}
		}()
		// A concurrent flight may have finished between Get and DoChan.
		if art, ok := s.store.Get(key); ok {
			return art, nil
		}
		resp, err := s.searcher.SearchMovie(context.WithoutCancel(ctx), title, year)
		if err != nil {
			return nil, err
		}
		art := s.fromMovie(resp.First())
		s.store.Set(key, art)
		metrics.ArtworkCacheEntries.Set(float64(s.store.Len()))
		return art, nil
	})

	var v interface{}
	select {
	case res := <-flight:
		if res.Err != nil {
			metrics.RecordArtworkLookup(metrics.LookupError)
			logging.Ctx(ctx).Warn().Err(res.Err).Str("title", title).Msg("Artwork lookup failed")
			return nil
		}
		v = res.Val
	case <-ctx.Done():
		metrics.RecordArtworkLookup(metrics.LookupError)
		logging.Ctx(ctx).Debug().Err(ctx.Err()).Str("title", title).Msg("Artwork lookup abandoned")
		return nil
	}

	art, _ := v.(*models.Artwork)
	if art == nil {
		metrics.RecordArtworkLookup(metrics.LookupNotFound)
	} else {
		metrics.RecordArtworkLookup(metrics.LookupFound)
	}
	return art
}

// fromMovie converts a search hit into Artwork; nil stays nil.
func (s *Service) fromMovie(m *tmdb.Movie) *models.Artwork {
	if m == nil {
		return nil
	}
	art := &models.Artwork{
		Overview: m.Overview,
		TMDBID:   m.ID,
	}
	if m.PosterPath != "" {
		art.Poster = s.imageBaseURL + "/" + PosterSize + m.PosterPath
	}
	if m.BackdropPath != "" {
		art.Backdrop = s.imageBaseURL + "/" + BackdropSize + m.BackdropPath
	}
	vote := m.VoteAverage
	art.VoteAverage = &vote
	return art
}

// LookupBatch looks up artwork for every film concurrently and returns the
// films paired with their artwork in input order. A failed or panicking
// lookup leaves only its own position without artwork.
func (s *Service) LookupBatch(ctx context.Context, films []models.Film) []models.FilmWithArtwork {
	out := make([]models.FilmWithArtwork, len(films))
	for i := range films {
		out[i].Film = films[i]
	}
	metrics.ArtworkBatchSize.Observe(float64(len(films)))
	if s.searcher == nil || len(films) == 0 {
		return out
	}

	// Lookup never returns an error, so the group context is never canceled
	// by a sibling.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i := range films {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logging.Ctx(ctx).Error().
						Str("title", films[i].Title).
						Str("panic", fmt.Sprint(r)).
						Str("stack", string(debug.Stack())).
						Msg("Recovered panic in artwork lookup")
				}
			}()
			out[i].Artwork = s.Lookup(gctx, films[i].Title, films[i].Year)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cinegraph/internal/models"
)

// ErrInvalidStrategy is returned for an unknown recommendation strategy.
var ErrInvalidStrategy = errors.New("invalid recommendation strategy")

// Strategy selects how recommendations relate to the seed film.
type Strategy string

const (
	StrategyActor    Strategy = "actor"
	StrategyGenre    Strategy = "genre"
	StrategyDirector Strategy = "director"
)

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyActor, StrategyGenre, StrategyDirector}

// ParseStrategy parses a strategy name, ignoring case and surrounding space.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyActor:
		return StrategyActor, nil
	case StrategyGenre:
		return StrategyGenre, nil
	case StrategyDirector:
		return StrategyDirector, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// Recommend dispatches to the recommendation query for strategy.
func (s *Service) Recommend(ctx context.Context, uri string, strategy Strategy) ([]models.Film, error) {
	switch strategy {
	case StrategyActor:
		return s.RecommendByActor(ctx, uri)
	case StrategyGenre:
		return s.RecommendByGenre(ctx, uri)
	case StrategyDirector:
		return s.RecommendByDirector(ctx, uri)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}
}

// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/models"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

func TestArtwork_DerivedURLs(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.tmdb.movies["Inception"] = tmdb.Movie{
		ID:           27205,
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		Overview:     "Un voleur qui s'approprie les secrets",
		VoteAverage:  8.4,
	}

	tests := []struct {
		name         string
		query        string
		wantPoster   string
		wantBackdrop string
	}{
		{"stored sizes", "", "https://img.test/t/p/w500/poster.jpg", "https://img.test/t/p/w1280/backdrop.jpg"},
		{"custom sizes", "&poster_size=w185&backdrop_size=original", "https://img.test/t/p/w185/poster.jpg", "https://img.test/t/p/original/backdrop.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/artwork?title=Inception&year=2010"+tt.query, nil), http.StatusOK)
			var view models.ArtworkView
			decodeData(t, env, &view)
			if view.Artwork == nil {
				t.Fatal("expected artwork")
			}
			if view.Artwork.TMDBID != 27205 {
				t.Errorf("tmdb id = %d, want 27205", view.Artwork.TMDBID)
			}
			if view.PosterURL != tt.wantPoster {
				t.Errorf("poster url = %q, want %q", view.PosterURL, tt.wantPoster)
			}
			if view.BackdropURL != tt.wantBackdrop {
				t.Errorf("backdrop url = %q, want %q", view.BackdropURL, tt.wantBackdrop)
			}
		})
	}
}

func TestArtwork_AbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []serverOption
		fail bool
	}{
		{name: "no match"},
		{name: "tmdb failure", fail: true},
		{name: "tmdb disabled", opts: []serverOption{withoutTMDB()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.opts...)
			if tt.fail {
				s.tmdb.fail["Seven"] = true
			}
			env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/artwork?title=Seven", nil), http.StatusOK)
			var view models.ArtworkView
			decodeData(t, env, &view)
			if view.Artwork != nil || view.PosterURL != "" {
				t.Errorf("expected no artwork, got %+v", view)
			}
		})
	}
}

func TestArtwork_InvalidParameters(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, target := range []string{
		"/api/v1/artwork",
		"/api/v1/artwork?title=Inception&year=soon",
		"/api/v1/artwork?title=Inception&year=1200",
		"/api/v1/artwork?title=Inception&poster_size=w999",
		"/api/v1/artwork?title=Inception&backdrop_size=huge",
	} {
		env := decodeEnvelope(t, s.do(t, http.MethodGet, target, nil), http.StatusBadRequest)
		checkErrorCode(t, env, ErrCodeValidation)
	}
}

func TestArtworkBatch_PreservesPositions(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.tmdb.movies["Inception"] = tmdb.Movie{ID: 1, PosterPath: "/a.jpg"}
	s.tmdb.movies["Seven"] = tmdb.Movie{ID: 2, PosterPath: "/b.jpg"}
	s.tmdb.fail["Amélie"] = true

	body := mustJSON(t, ArtworkBatchRequest{Films: []ArtworkBatchFilm{
		{Film: models.NewFilm(testNS+"Seven", "Seven")},
		{Film: models.NewFilm(testNS+"Amelie", "Amélie")},
		{Film: models.NewFilm(testNS+"Inception", "Inception")},
	}})
	env := decodeEnvelope(t, s.do(t, http.MethodPost, "/api/v1/artwork/batch", body), http.StatusOK)

	var out []models.FilmWithArtwork
	decodeData(t, env, &out)
	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}
	wantIDs := []int{2, 0, 1}
	for i, want := range wantIDs {
		got := 0
		if out[i].Artwork != nil {
			got = out[i].Artwork.TMDBID
		}
		if got != want {
			t.Errorf("result[%d] (%s) tmdb id = %d, want %d", i, out[i].Title, got, want)
		}
	}
}

func TestArtworkBatch_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"not json", `films`, ErrCodeInvalidJSON},
		{"missing films", `{}`, ErrCodeValidation},
		{"missing title", `{"films":[{"uri":"http://example.org/film#X"}]}`, ErrCodeValidation},
		{"bad uri", `{"films":[{"uri":"not an iri","title":"X"}]}`, ErrCodeValidation},
		{"unknown field", `{"films":[{"title":"X","budget":1}]}`, ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			env := decodeEnvelope(t, s.do(t, http.MethodPost, "/api/v1/artwork/batch", []byte(tt.body)), http.StatusBadRequest)
			checkErrorCode(t, env, tt.wantCode)
		})
	}
}

func TestArtworkBatch_AcceptsFilmRecords(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	seedCatalog(s)
	s.tmdb.movies["Inception"] = tmdb.Movie{ID: 27205, PosterPath: "/p.jpg"}

	env := decodeEnvelope(t, s.do(t, http.MethodGet, "/api/v1/films?artwork=true", nil), http.StatusOK)
	var listed struct {
		Films []json.RawMessage `json:"films"`
	}
	decodeData(t, env, &listed)
	if len(listed.Films) == 0 {
		t.Fatal("expected films from the listing")
	}

	var want []models.Film
	for _, raw := range listed.Films {
		var f models.Film
		if err := json.Unmarshal(raw, &f); err != nil {
			t.Fatalf("decode listed film: %v", err)
		}
		want = append(want, f)
	}

	body := mustJSON(t, map[string]interface{}{"films": listed.Films})
	env = decodeEnvelope(t, s.do(t, http.MethodPost, "/api/v1/artwork/batch", body), http.StatusOK)

	var out []models.FilmWithArtwork
	decodeData(t, env, &out)
	if len(out) != len(want) {
		t.Fatalf("got %d results, want %d", len(out), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(out[i].Film, want[i]) {
			t.Errorf("result[%d] film = %+v, want %+v", i, out[i].Film, want[i])
		}
		if (out[i].Title == "Inception") != (out[i].Artwork != nil) {
			t.Errorf("result[%d] (%s) artwork = %+v", i, out[i].Title, out[i].Artwork)
		}
	}
}

func TestArtworkBatch_KeepsEveryFilmField(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.tmdb.movies["Inception"] = tmdb.Movie{ID: 27205, PosterPath: "/p.jpg"}

	body := []byte(`{"films":[{"uri":"` + testNS + `Inception","title":"Inception","year":2010,` +
		`"duration":148,"genres":["Sci-Fi","Action"],"genre":"Sci-Fi, Action",` +
		`"director":"Christopher Nolan","actors":["Leonardo DiCaprio"]}]}`)
	env := decodeEnvelope(t, s.do(t, http.MethodPost, "/api/v1/artwork/batch", body), http.StatusOK)

	var out []models.FilmWithArtwork
	decodeData(t, env, &out)
	if len(out) != 1 {
		t.Fatalf("got %d results, want 1", len(out))
	}
	f := out[0]
	if f.YearValue() != 2010 || f.Duration == nil || *f.Duration != 148 {
		t.Errorf("year/duration lost: %+v", f.Film)
	}
	if !reflect.DeepEqual(f.Genres, []string{"Sci-Fi", "Action"}) || f.Genre != "Sci-Fi, Action" {
		t.Errorf("genres lost: %+v", f.Film)
	}
	if f.Director != "Christopher Nolan" || !reflect.DeepEqual(f.Actors, []string{"Leonardo DiCaprio"}) {
		t.Errorf("credits lost: %+v", f.Film)
	}
	if f.Artwork == nil || f.Artwork.TMDBID != 27205 {
		t.Errorf("artwork = %+v", f.Artwork)
	}
}

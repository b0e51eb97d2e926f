package ambr

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/seriaati/ambr-go/internal/cache"
	mock_cache "github.com/seriaati/ambr-go/internal/mocks/cache"
)

const characterDetailBody = `{
	"response": 200,
	"data": {
		"id": 10000002,
		"rank": 5,
		"name": "Kamisato Ayaka",
		"element": "Ice",
		"weaponType": "WEAPON_SWORD_ONE_HAND",
		"icon": "UI_AvatarIcon_Ayaka",
		"birthday": [9, 28],
		"release": 1626912000,
		"route": "Kamisato Ayaka",
		"fetter": {
			"title": "Frostflake Heron",
			"detail": "Daughter of the Kamisato Clan.",
			"constellation": "Grus Nivis",
			"native": "Kamisato Clan",
			"cv": {"EN": "Erica Mendez", "JP": "Saori Hayami"}
		},
		"upgrade": {"prop": [], "promote": []},
		"ascension": {"104161": 4},
		"talent": {
			"1": {"type": 1, "name": "Kamisato Art: Hyouka", "description": "Summons blooming ice", "icon": "Skill_S_Ayaka_01", "promote": {}},
			"0": {"type": 0, "name": "Kamisato Art: Kabuki", "description": "Performs up to 5 rapid strikes", "icon": "Skill_A_01", "promote": {}}
		},
		"constellation": {
			"0": {"name": "Snowswept Sakura", "description": "Restores energy", "icon": "UI_Talent_S_Ayaka_01"}
		},
		"beta": false,
		"specialProp": "FIGHT_PROP_CRITICAL_HURT",
		"region": "INAZUMA"
	}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newStartedClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	client := NewClient(opts...)
	require.NoError(t, client.Start(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})
	return client
}

func newTestStore(t *testing.T) *cache.SQLiteStore {
	t.Helper()

	store, err := cache.NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	return store
}

func TestClient_FetchCharacterDetail(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/en/avatar/10000002", r.URL.Path)
		_, _ = w.Write([]byte(characterDetailBody))
	})

	store := newTestStore(t)
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheStore(store))

	detail, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)

	assert.Equal(t, "10000002", detail.ID)
	assert.Equal(t, "Kamisato Ayaka", detail.Name)
	assert.Equal(t, 5, detail.Rarity)
	assert.Equal(t, ElementCryo, detail.Element)
	assert.Equal(t, WeaponTypeSword, detail.WeaponType)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/UI_AvatarIcon_Ayaka.png", detail.Icon)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/UI_Gacha_AvatarImg_Ayaka.png", detail.Gacha())
	assert.Equal(t, Birthday{Month: 9, Day: 28}, detail.Birthday)
	assert.Equal(t, time.Unix(1626912000, 0), detail.Release)
	assert.Equal(t, SpecialStatCritDMG, detail.SpecialStat)
	assert.Equal(t, "Frostflake Heron", detail.Info.Title)
	assert.Equal(t, []CharacterCV{
		{Lang: "EN", VA: "Erica Mendez"},
		{Lang: "JP", VA: "Saori Hayami"},
	}, detail.Info.CV)
	assert.Equal(t, []AscensionMaterial{{ID: 104161, Rarity: 4}}, detail.AscensionMaterials)

	// Talents come back ordered by their map key.
	require.Len(t, detail.Talents, 2)
	assert.Equal(t, "Kamisato Art: Kabuki", detail.Talents[0].Name)
	assert.Equal(t, TalentTypeNormal, detail.Talents[0].Type)
	assert.Equal(t, "Kamisato Art: Hyouka", detail.Talents[1].Name)
	require.Len(t, detail.Constellations, 1)
	assert.Equal(t, "Snowswept Sakura", detail.Constellations[0].Name)

	// A second fetch is served from the cache.
	again, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	assert.Equal(t, detail, again)
	assert.Equal(t, int32(1), requests.Load())

	body, ok, err := store.Get(ctx, "en/avatar/10000002")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, characterDetailBody, string(body))
}

func TestClient_FetchWithoutCache(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(characterDetailBody))
	})

	store := newTestStore(t)
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheStore(store))

	_, err := client.FetchCharacterDetail(ctx, "10000002", FetchWithoutCache())
	require.NoError(t, err)
	_, err = client.FetchCharacterDetail(ctx, "10000002", FetchWithoutCache())
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())

	// The bypassed responses were not written back either.
	_, ok, err := store.Get(ctx, "en/avatar/10000002")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_ZeroTTLDisablesCache(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(characterDetailBody))
	})

	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

	_, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	_, err = client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestClient_NotFound(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	store := newTestStore(t)
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheStore(store))

	_, err := client.FetchCharacterDetail(ctx, "99999999")
	var notFound *DataNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "en/avatar/99999999", notFound.Endpoint)

	// 404 responses are never cached.
	_, ok, err := store.Get(ctx, "en/avatar/99999999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_GatewayTimeout(t *testing.T) {
	for _, code := range []int{522, 524} {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})
			client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

			_, err := client.FetchCharacterDetail(context.Background(), "10000002")
			var timeout *ConnectionTimeoutError
			require.ErrorAs(t, err, &timeout)
			assert.Equal(t, code, timeout.Code)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

	_, err := client.FetchCharacterDetail(context.Background(), "10000002")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, "en/avatar/10000002", apiErr.Endpoint)
}

func TestClient_SchemaError(t *testing.T) {
	t.Run("missing required field", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response": 200, "data": {"id": 10000002, "rank": 5, "icon": "UI_AvatarIcon_Ayaka"}}`))
		})
		client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

		_, err := client.FetchCharacterDetail(context.Background(), "10000002")
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Field, "Name")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json at all"))
		})
		client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

		_, err := client.FetchCharacterDetail(context.Background(), "10000002")
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Empty(t, schemaErr.Field)
	})
}

func TestClient_LanguagePaths(t *testing.T) {
	ctx := context.Background()
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(characterDetailBody))
	})

	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0), WithLanguage(LanguageFR))

	_, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	_, err = client.FetchCharacterDetail(ctx, "10000002", FetchWithLanguage(LanguageJP))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/fr/avatar/10000002", "/jp/avatar/10000002"}, paths)
}

func TestClient_StaticEndpointPath(t *testing.T) {
	var gotPath atomic.Value
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		_, _ = w.Write([]byte(`{"response": 200, "data": {"12": {"id": 12, "version": "5.0", "beta": false, "items": {"avatar": ["10000002"]}}}}`))
	})
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheTTL(0))

	changelogs, err := client.FetchChangelogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/static/changelog", gotPath.Load())
	require.Len(t, changelogs, 1)
	assert.Equal(t, 12, changelogs[0].ID)
	assert.Equal(t, "5.0", changelogs[0].Version)
	require.Len(t, changelogs[0].Items, 1)
	assert.Equal(t, ItemCategoryCharacter, changelogs[0].Items[0].Category)
}

func TestClient_CacheFailuresDegradeToLiveRequests(t *testing.T) {
	ctx := context.Background()
	var requests atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(characterDetailBody))
	})

	ctrl := gomock.NewController(t)
	store := mock_cache.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), "en/avatar/10000002").Return(nil, false, errors.New("database is locked"))
	store.EXPECT().Set(gomock.Any(), "en/avatar/10000002", gomock.Any()).Return(errors.New("database is locked"))
	store.EXPECT().Close().Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheStore(store), WithLogger(logger))

	detail, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	assert.Equal(t, "Kamisato Ayaka", detail.Name)
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_ClearCache(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(characterDetailBody))
	})

	store := newTestStore(t)
	client := newStartedClient(t, WithBaseURL(srv.URL), WithCacheStore(store))

	_, err := client.FetchCharacterDetail(ctx, "10000002")
	require.NoError(t, err)
	_, ok, err := store.Get(ctx, "en/avatar/10000002")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, client.ClearCache(ctx))
	_, ok, err = store.Get(ctx, "en/avatar/10000002")
	require.NoError(t, err)
	assert.False(t, ok)
}

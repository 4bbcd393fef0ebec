package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/stylist-web/internal/apiclient"
	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/mocks"
	"github.com/target/stylist-web/internal/observability/notify"
	"go.uber.org/mock/gomock"
)

func newTutorialService(t *testing.T) (*TutorialService, *mocks.MockTutorialAPI, *core.QueryCache, *notify.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockTutorialAPI(ctrl)
	cache := core.NewQueryCache(core.QueryCacheOptions{})
	rec := &notify.Recorder{}
	svc, err := NewTutorialService(TutorialServiceOptions{API: api, Cache: cache, Notifier: rec})
	require.NoError(t, err)
	return svc, api, cache, rec
}

func TestNewTutorialService_Validation(t *testing.T) {
	_, err := NewTutorialService(TutorialServiceOptions{})
	require.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = NewTutorialService(TutorialServiceOptions{API: mocks.NewMockTutorialAPI(ctrl)})
	require.Error(t, err)
}

func TestTutorialService_ReadsAreCached(t *testing.T) {
	svc, api, _, _ := newTutorialService(t)
	ctx := context.Background()
	f := model.TutorialFilters{Category: "cutting"}

	api.EXPECT().List(gomock.Any(), f).Return([]model.Tutorial{{ID: "t1"}}, nil).Times(1)
	api.EXPECT().Get(gomock.Any(), "t1").Return(model.Tutorial{ID: "t1"}, nil).Times(1)
	api.EXPECT().Progress(gomock.Any(), "t1").Return(30, nil).Times(1)
	api.EXPECT().Favorites(gomock.Any()).Return([]model.Tutorial{}, nil).Times(1)

	for range 2 {
		list, err := svc.List(ctx, f)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		tut, err := svc.Get(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", tut.ID)

		p, err := svc.Progress(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, 30, p)

		_, err = svc.Favorites(ctx)
		require.NoError(t, err)
	}
}

func TestTutorialService_UpdateProgressPatchesCache(t *testing.T) {
	svc, api, cache, rec := newTutorialService(t)
	ctx := context.Background()

	cache.SetQueryData(TutorialDetailKey("t1"), model.Tutorial{ID: "t1", Progress: 10})
	cache.SetQueryData(TutorialListKey(model.TutorialFilters{}), []model.Tutorial{{ID: "t1", Progress: 10}, {ID: "t2", Progress: 50}})
	cache.SetQueryData(TutorialProgressKey("t1"), 10)

	api.EXPECT().UpdateProgress(gomock.Any(), "t1", 100).Return(nil)
	require.NoError(t, svc.UpdateProgress(ctx, "t1", 120))

	detail, _ := core.GetQueryData[model.Tutorial](cache, TutorialDetailKey("t1"))
	assert.Equal(t, 100, detail.Progress)

	list, _ := core.GetQueryData[[]model.Tutorial](cache, TutorialListKey(model.TutorialFilters{}))
	assert.Equal(t, 100, list[0].Progress)
	assert.Equal(t, 50, list[1].Progress)

	p, ok := core.GetQueryData[int](cache, TutorialProgressKey("t1"))
	require.True(t, ok)
	assert.Equal(t, 100, p)
	assert.Empty(t, rec.Messages())
}

func TestTutorialService_FavoriteUpdatesFlagAndInvalidatesFavorites(t *testing.T) {
	svc, api, cache, rec := newTutorialService(t)
	ctx := context.Background()

	cache.SetQueryData(TutorialDetailKey("t1"), model.Tutorial{ID: "t1"})
	cache.SetQueryData(TutorialListKey(model.TutorialFilters{}), []model.Tutorial{{ID: "t1"}, {ID: "t2"}})
	cache.SetQueryData(TutorialFavoritesKey(), []model.Tutorial{})

	api.EXPECT().Favorite(gomock.Any(), "t1").Return(nil)
	require.NoError(t, svc.Favorite(ctx, "t1"))

	detail, _ := core.GetQueryData[model.Tutorial](cache, TutorialDetailKey("t1"))
	assert.True(t, detail.Favorited)
	list, _ := core.GetQueryData[[]model.Tutorial](cache, TutorialListKey(model.TutorialFilters{}))
	assert.True(t, list[0].Favorited)
	assert.False(t, list[1].Favorited)

	_, fresh, ok := cache.Get(TutorialFavoritesKey())
	assert.True(t, ok)
	assert.False(t, fresh)

	api.EXPECT().Unfavorite(gomock.Any(), "t1").Return(nil)
	require.NoError(t, svc.Unfavorite(ctx, "t1"))
	detail, _ = core.GetQueryData[model.Tutorial](cache, TutorialDetailKey("t1"))
	assert.False(t, detail.Favorited)
	assert.Equal(t, []string{MsgFavorited, MsgUnfavorited}, rec.Messages())
}

func TestTutorialService_FavoriteFailureLeavesCache(t *testing.T) {
	svc, api, cache, rec := newTutorialService(t)
	cache.SetQueryData(TutorialDetailKey("t1"), model.Tutorial{ID: "t1"})

	api.EXPECT().Favorite(gomock.Any(), "t1").
		Return(&apiclient.Error{Kind: apiclient.KindServer, Status: http.StatusInternalServerError})
	require.Error(t, svc.Favorite(context.Background(), "t1"))

	detail, _ := core.GetQueryData[model.Tutorial](cache, TutorialDetailKey("t1"))
	assert.False(t, detail.Favorited)
	assert.Empty(t, rec.Messages())
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/stylist-web/internal/apiclient"
	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/domain/model"
	apperrors "github.com/target/stylist-web/internal/errors"
	"github.com/target/stylist-web/internal/mocks"
	"github.com/target/stylist-web/internal/observability/notify"
	"go.uber.org/mock/gomock"
)

func newCommunityService(t *testing.T) (*CommunityService, *mocks.MockCommunityAPI, *core.QueryCache, *notify.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCommunityAPI(ctrl)
	cache := core.NewQueryCache(core.QueryCacheOptions{})
	rec := &notify.Recorder{}
	svc, err := NewCommunityService(CommunityServiceOptions{API: api, Cache: cache, Notifier: rec})
	require.NoError(t, err)
	return svc, api, cache, rec
}

func seedPosts(cache *core.QueryCache) (model.PageRequest, model.PageRequest) {
	p1 := model.PageRequest{Page: 1, Limit: 10}
	p2 := model.PageRequest{Page: 2, Limit: 10}
	cache.SetQueryData(PostListKey(p1), []model.Post{{ID: "p1", Likes: 3, Comments: 1}, {ID: "p2", Likes: 0}})
	cache.SetQueryData(PostListKey(p2), []model.Post{{ID: "p3", Likes: 7}})
	cache.SetQueryData(PostDetailKey("p1"), model.Post{ID: "p1", Likes: 3, Comments: 1})
	cache.SetQueryData(CommentsKey("p1"), []model.Comment{{ID: "c1", PostID: "p1"}})
	return p1, p2
}

func TestNewCommunityService_Validation(t *testing.T) {
	_, err := NewCommunityService(CommunityServiceOptions{})
	require.Error(t, err)
}

func TestCommunityService_ReadsAreCached(t *testing.T) {
	svc, api, _, _ := newCommunityService(t)
	ctx := context.Background()
	page := model.PageRequest{Page: 1}

	api.EXPECT().Posts(gomock.Any(), page).Return([]model.Post{{ID: "p1"}}, nil).Times(1)
	api.EXPECT().Post(gomock.Any(), "p1").Return(model.Post{ID: "p1"}, nil).Times(1)
	api.EXPECT().Comments(gomock.Any(), "p1").Return([]model.Comment{{ID: "c1"}}, nil).Times(1)

	for range 2 {
		posts, err := svc.Posts(ctx, page)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		_, err = svc.Post(ctx, "p1")
		require.NoError(t, err)
		comments, err := svc.Comments(ctx, "p1")
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	}
}

func TestCommunityService_LikeAndUnlikePatchCounts(t *testing.T) {
	svc, api, cache, rec := newCommunityService(t)
	ctx := context.Background()
	p1, p2 := seedPosts(cache)

	api.EXPECT().LikePost(gomock.Any(), "p1").Return(nil)
	require.NoError(t, svc.LikePost(ctx, "p1"))

	detail, _ := core.GetQueryData[model.Post](cache, PostDetailKey("p1"))
	assert.Equal(t, 4, detail.Likes)
	assert.True(t, detail.Liked)
	page1, _ := core.GetQueryData[[]model.Post](cache, PostListKey(p1))
	assert.Equal(t, 4, page1[0].Likes)
	assert.Equal(t, 0, page1[1].Likes)
	page2, _ := core.GetQueryData[[]model.Post](cache, PostListKey(p2))
	assert.Equal(t, 7, page2[0].Likes)

	api.EXPECT().UnlikePost(gomock.Any(), "p2").Return(nil)
	require.NoError(t, svc.UnlikePost(ctx, "p2"))
	page1, _ = core.GetQueryData[[]model.Post](cache, PostListKey(p1))
	assert.Equal(t, 0, page1[1].Likes)
	assert.False(t, page1[1].Liked)

	assert.Empty(t, rec.Messages())
}

func TestCommunityService_CreateCommentCountsAndInvalidates(t *testing.T) {
	svc, api, cache, rec := newCommunityService(t)
	ctx := context.Background()
	p1, _ := seedPosts(cache)

	in := model.CommentInput{Content: "Love it"}
	api.EXPECT().CreateComment(gomock.Any(), "p1", in).Return(model.Comment{ID: "c2", PostID: "p1"}, nil)

	c, err := svc.CreateComment(ctx, "p1", model.CommentInput{Content: "  Love it  "})
	require.NoError(t, err)
	assert.Equal(t, "c2", c.ID)

	detail, _ := core.GetQueryData[model.Post](cache, PostDetailKey("p1"))
	assert.Equal(t, 2, detail.Comments)
	page1, _ := core.GetQueryData[[]model.Post](cache, PostListKey(p1))
	assert.Equal(t, 2, page1[0].Comments)

	_, fresh, ok := cache.Get(CommentsKey("p1"))
	require.True(t, ok)
	assert.False(t, fresh)
	assert.Equal(t, []string{MsgCommentAdded}, rec.Messages())
}

func TestCommunityService_EmptyContentIsRejectedLocally(t *testing.T) {
	svc, _, _, rec := newCommunityService(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, model.PostInput{Content: "   "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "content", apperrors.GetField(err))

	_, err = svc.UpdatePost(ctx, "p1", model.PostInput{})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateComment(ctx, "p1", model.CommentInput{Content: "\n"})
	assert.True(t, apperrors.IsValidation(err))

	assert.Empty(t, rec.Messages())
}

func TestCommunityService_PostLifecycle(t *testing.T) {
	svc, api, cache, rec := newCommunityService(t)
	ctx := context.Background()
	p1, _ := seedPosts(cache)

	api.EXPECT().CreatePost(gomock.Any(), model.PostInput{Content: "New look"}).Return(model.Post{ID: "p9"}, nil)
	_, err := svc.CreatePost(ctx, model.PostInput{Content: "New look"})
	require.NoError(t, err)
	_, fresh, _ := cache.Get(PostListKey(p1))
	assert.False(t, fresh)

	api.EXPECT().UpdatePost(gomock.Any(), "p1", model.PostInput{Content: "Edited"}).
		Return(model.Post{ID: "p1", Content: "Edited", Likes: 3}, nil)
	_, err = svc.UpdatePost(ctx, "p1", model.PostInput{Content: "Edited"})
	require.NoError(t, err)
	detail, _ := core.GetQueryData[model.Post](cache, PostDetailKey("p1"))
	assert.Equal(t, "Edited", detail.Content)

	api.EXPECT().DeletePost(gomock.Any(), "p1").Return(nil)
	require.NoError(t, svc.DeletePost(ctx, "p1"))
	_, _, ok := cache.Get(PostDetailKey("p1"))
	assert.False(t, ok)
	_, _, ok = cache.Get(CommentsKey("p1"))
	assert.False(t, ok)
	_, _, ok = cache.Get(PostListKey(p1))
	assert.True(t, ok)

	assert.Equal(t, []string{MsgPostCreated, MsgPostUpdated, MsgPostDeleted}, rec.Messages())
}

func TestCommunityService_CommentChangesInvalidateAllCommentLists(t *testing.T) {
	svc, api, cache, rec := newCommunityService(t)
	ctx := context.Background()
	seedPosts(cache)
	cache.SetQueryData(CommentsKey("p2"), []model.Comment{})

	api.EXPECT().UpdateComment(gomock.Any(), "c1", model.CommentInput{Content: "fixed"}).Return(model.Comment{ID: "c1"}, nil)
	_, err := svc.UpdateComment(ctx, "c1", model.CommentInput{Content: "fixed"})
	require.NoError(t, err)
	for _, id := range []string{"p1", "p2"} {
		_, fresh, ok := cache.Get(CommentsKey(id))
		require.True(t, ok)
		assert.False(t, fresh)
	}

	api.EXPECT().LikeComment(gomock.Any(), "c1").Return(nil)
	api.EXPECT().UnlikeComment(gomock.Any(), "c1").Return(nil)
	api.EXPECT().DeleteComment(gomock.Any(), "c1").Return(nil)
	require.NoError(t, svc.LikeComment(ctx, "c1"))
	require.NoError(t, svc.UnlikeComment(ctx, "c1"))
	require.NoError(t, svc.DeleteComment(ctx, "c1"))

	assert.Equal(t, []string{MsgCommentUpdated, MsgCommentDeleted}, rec.Messages())
}

func TestCommunityService_FailureLeavesCache(t *testing.T) {
	svc, api, cache, rec := newCommunityService(t)
	p1, _ := seedPosts(cache)

	api.EXPECT().LikePost(gomock.Any(), "p1").Return(&apiclient.Error{Kind: apiclient.KindNetwork})
	require.Error(t, svc.LikePost(context.Background(), "p1"))

	detail, _ := core.GetQueryData[model.Post](cache, PostDetailKey("p1"))
	assert.Equal(t, 3, detail.Likes)
	_, fresh, _ := cache.Get(PostListKey(p1))
	assert.True(t, fresh)
	assert.Empty(t, rec.Messages())
}

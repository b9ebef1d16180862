package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommentService(t *testing.T) (CommentService, *mockCommentRepo, *mockPostRepo) {
	t.Helper()
	commentRepo := newMockCommentRepo()
	postRepo := newMockPostRepo()
	svc := NewCommentService(commentRepo, postRepo, testRedis())
	return svc, commentRepo, postRepo
}

func seedPost(t *testing.T, postRepo *mockPostRepo, userID uint64) *model.Post {
	t.Helper()
	post := &model.Post{
		UserID:     userID,
		Caption:    "sunset",
		Filename:   "a.jpg",
		MediaType:  consts.MediaTypeImage,
		MimeType:   "image/jpeg",
		Visibility: consts.VisibilityPublic,
	}
	require.NoError(t, postRepo.CreatePost(context.Background(), post))
	return post
}

func TestCreateComment(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{
		PostID:  post.ID,
		Comment: "nice shot",
	})
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, uint64(2), comment.UserID)
	assert.Nil(t, comment.ParentID)

	got, err := postRepo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCount)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	svc, _, _ := setupCommentService(t)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CreateCommentRequest{
		PostID:  999,
		Comment: "hello",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreateComment_ParentNotFound(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	post := seedPost(t, postRepo, 1)

	_, err := svc.CreateComment(context.Background(), 2, &dto.CreateCommentRequest{
		PostID:   post.ID,
		Comment:  "reply",
		ParentID: util.PtrUint64(999),
	})
	assert.ErrorIs(t, err, ErrParentCommentNotFound)
}

func TestCreateComment_ParentOnOtherPost(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	postA := seedPost(t, postRepo, 1)
	postB := seedPost(t, postRepo, 1)

	parent, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{
		PostID:  postA.ID,
		Comment: "on post A",
	})
	require.NoError(t, err)

	_, err = svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{
		PostID:   postB.ID,
		Comment:  "reply on post B",
		ParentID: &parent.ID,
	})
	assert.ErrorIs(t, err, ErrParentPostMismatch)
}

func TestDeleteComment_Leaf(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{
		PostID:  post.ID,
		Comment: "solo",
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteComment(ctx, 2, consts.RoleUser, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := postRepo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)
}

func TestDeleteComment_Subtree(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	// A <- B <- C 的三层链
	a, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "A"})
	require.NoError(t, err)
	b, err := svc.CreateComment(ctx, 3, &dto.CreateCommentRequest{PostID: post.ID, Comment: "B", ParentID: &a.ID})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, 4, &dto.CreateCommentRequest{PostID: post.ID, Comment: "C", ParentID: &b.ID})
	require.NoError(t, err)

	got, err := postRepo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.CommentsCount)

	deleted, err := svc.DeleteComment(ctx, 2, consts.RoleUser, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	got, err = postRepo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)

	_, err = svc.GetComment(ctx, b.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_NotFound(t *testing.T) {
	svc, _, _ := setupCommentService(t)

	_, err := svc.DeleteComment(context.Background(), 2, consts.RoleUser, 999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "mine"})
	require.NoError(t, err)

	_, err = svc.DeleteComment(ctx, 3, consts.RoleUser, comment.ID)
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestDeleteComment_Moderator(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "flagged"})
	require.NoError(t, err)

	deleted, err := svc.DeleteComment(ctx, 3, consts.RoleModerator, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestUpdateComment(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "typo"})
	require.NoError(t, err)

	err = svc.UpdateComment(ctx, 2, consts.RoleUser, comment.ID, &dto.UpdateCommentRequest{Comment: "fixed"})
	require.NoError(t, err)

	got, err := svc.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Comment)

	err = svc.UpdateComment(ctx, 3, consts.RoleUser, comment.ID, &dto.UpdateCommentRequest{Comment: "hijack"})
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestUpdateComment_NoChange(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	comment, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "same"})
	require.NoError(t, err)

	// 内容未变时 MySQL 报 0 行受影响，不能误判为评论不存在
	err = svc.UpdateComment(ctx, 2, consts.RoleUser, comment.ID, &dto.UpdateCommentRequest{Comment: "same"})
	assert.ErrorIs(t, err, ErrNothingUpdated)

	got, err := svc.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "same", got.Comment)
}

func TestListByPost_Pagination(t *testing.T) {
	svc, _, postRepo := setupCommentService(t)
	ctx := context.Background()
	post := seedPost(t, postRepo, 1)

	for i := 0; i < 25; i++ {
		_, err := svc.CreateComment(ctx, 2, &dto.CreateCommentRequest{PostID: post.ID, Comment: "c"})
		require.NoError(t, err)
	}

	result, err := svc.ListByPost(ctx, post.ID, &dto.PageQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Comments, 5)
	assert.Equal(t, int64(25), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasMore)
}

package service

import (
	"Photoshare/internal/model"
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// testRedis 返回一个指向不可达地址的客户端，
// 脏标记等尽力而为的操作只会记一条告警
func testRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

type mockCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (m *mockCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCommentRepo) UpdateComment(_ context.Context, id uint64, text string) (int64, error) {
	c, ok := m.comments[id]
	if !ok {
		return 0, nil
	}
	// MySQL 语义：内容相同时 affected rows 为 0
	if c.Comment == text {
		return 0, nil
	}
	c.Comment = text
	c.UpdatedAt = time.Now()
	return 1, nil
}

func (m *mockCommentRepo) DeleteTree(_ context.Context, id uint64) (int64, error) {
	if _, ok := m.comments[id]; !ok {
		return 0, nil
	}

	targets := map[uint64]struct{}{id: {}}
	frontier := []uint64{id}
	for len(frontier) > 0 {
		var next []uint64
		for _, c := range m.comments {
			if c.ParentID == nil {
				continue
			}
			for _, pid := range frontier {
				if *c.ParentID == pid {
					if _, seen := targets[c.ID]; !seen {
						targets[c.ID] = struct{}{}
						next = append(next, c.ID)
					}
				}
			}
		}
		frontier = next
	}

	for cid := range targets {
		delete(m.comments, cid)
	}
	return int64(len(targets)), nil
}

func (m *mockCommentRepo) ListByPost(_ context.Context, postID uint64, page, limit int, _, _ string) ([]*model.Comment, int64, error) {
	var all []*model.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			copied := *c
			all = append(all, &copied)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *mockCommentRepo) CountByPost(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, c := range m.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

type mockPostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[uint64]*model.Post), nextID: 1}
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = m.nextID
	m.nextID++
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockPostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	p, ok := m.posts[post.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Caption = post.Caption
	p.Visibility = post.Visibility
	return nil
}

func (m *mockPostRepo) DeletePost(_ context.Context, id uint64) (int64, error) {
	if _, ok := m.posts[id]; !ok {
		return 0, nil
	}
	delete(m.posts, id)
	return 1, nil
}

func (m *mockPostRepo) FindAll(_ context.Context, _ string, page, limit int) ([]*model.Post, int64, error) {
	return m.page(page, limit, func(p *model.Post) bool { return p.Visibility == "public" })
}

func (m *mockPostRepo) ListByUser(_ context.Context, userID uint64, page, limit int) ([]*model.Post, int64, error) {
	return m.page(page, limit, func(p *model.Post) bool { return p.UserID == userID })
}

func (m *mockPostRepo) page(page, limit int, match func(*model.Post) bool) ([]*model.Post, int64, error) {
	var all []*model.Post
	for _, p := range m.posts {
		if match(p) {
			copied := *p
			all = append(all, &copied)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *mockPostRepo) CountByUsersSince(_ context.Context, userIDs []uint64, since time.Time) (int64, error) {
	var count int64
	for _, p := range m.posts {
		for _, uid := range userIDs {
			if p.UserID == uid && !p.CreatedAt.Before(since) {
				count++
			}
		}
	}
	return count, nil
}

func (m *mockPostRepo) IncreaseLikeCount(_ context.Context, id uint64, n int) error {
	if p, ok := m.posts[id]; ok {
		p.LikesCount += n
	}
	return nil
}

func (m *mockPostRepo) DecreaseLikeCount(_ context.Context, id uint64, n int) error {
	if p, ok := m.posts[id]; ok {
		p.LikesCount -= n
	}
	return nil
}

func (m *mockPostRepo) IncreaseCommentCount(_ context.Context, id uint64, n int) error {
	if p, ok := m.posts[id]; ok {
		p.CommentsCount += n
	}
	return nil
}

func (m *mockPostRepo) DecreaseCommentCount(_ context.Context, id uint64, n int) error {
	if p, ok := m.posts[id]; ok {
		p.CommentsCount -= n
	}
	return nil
}

func (m *mockPostRepo) SetCounters(_ context.Context, id uint64, likes, comments int64) error {
	if p, ok := m.posts[id]; ok {
		p.LikesCount = int(likes)
		p.CommentsCount = int(comments)
	}
	return nil
}

type likeKey struct {
	userID uint64
	target uint64
}

type mockLikeRepo struct {
	postLikes    map[likeKey]struct{}
	commentLikes map[likeKey]struct{}
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{
		postLikes:    make(map[likeKey]struct{}),
		commentLikes: make(map[likeKey]struct{}),
	}
}

func (m *mockLikeRepo) ExistsPostLike(_ context.Context, userID, postID uint64) (bool, error) {
	_, ok := m.postLikes[likeKey{userID, postID}]
	return ok, nil
}

func (m *mockLikeRepo) CreatePostLike(_ context.Context, userID, postID uint64) error {
	m.postLikes[likeKey{userID, postID}] = struct{}{}
	return nil
}

func (m *mockLikeRepo) DeletePostLike(_ context.Context, userID, postID uint64) (int64, error) {
	k := likeKey{userID, postID}
	if _, ok := m.postLikes[k]; !ok {
		return 0, nil
	}
	delete(m.postLikes, k)
	return 1, nil
}

func (m *mockLikeRepo) CountByPost(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for k := range m.postLikes {
		if k.target == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockLikeRepo) ExistsCommentLike(_ context.Context, userID, commentID uint64) (bool, error) {
	_, ok := m.commentLikes[likeKey{userID, commentID}]
	return ok, nil
}

func (m *mockLikeRepo) CreateCommentLike(_ context.Context, userID, commentID uint64) error {
	m.commentLikes[likeKey{userID, commentID}] = struct{}{}
	return nil
}

func (m *mockLikeRepo) DeleteCommentLike(_ context.Context, userID, commentID uint64) (int64, error) {
	k := likeKey{userID, commentID}
	if _, ok := m.commentLikes[k]; !ok {
		return 0, nil
	}
	delete(m.commentLikes, k)
	return 1, nil
}

type followKey struct {
	follower uint64
	followee uint64
}

type mockFollowRepo struct {
	follows map[followKey]struct{}
}

func newMockFollowRepo() *mockFollowRepo {
	return &mockFollowRepo{follows: make(map[followKey]struct{})}
}

func (m *mockFollowRepo) Exists(_ context.Context, followerID, followeeID uint64) (bool, error) {
	_, ok := m.follows[followKey{followerID, followeeID}]
	return ok, nil
}

func (m *mockFollowRepo) Create(_ context.Context, followerID, followeeID uint64) error {
	m.follows[followKey{followerID, followeeID}] = struct{}{}
	return nil
}

func (m *mockFollowRepo) Delete(_ context.Context, followerID, followeeID uint64) (int64, error) {
	k := followKey{followerID, followeeID}
	if _, ok := m.follows[k]; !ok {
		return 0, nil
	}
	delete(m.follows, k)
	return 1, nil
}

func (m *mockFollowRepo) ListFollowers(_ context.Context, _ uint64, _, _ int) ([]*model.User, int64, error) {
	return nil, 0, nil
}

func (m *mockFollowRepo) ListFollowing(_ context.Context, _ uint64, _, _ int) ([]*model.User, int64, error) {
	return nil, 0, nil
}

func (m *mockFollowRepo) CountFollowing(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for k := range m.follows {
		if k.follower == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockFollowRepo) ListFolloweeIDs(_ context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	for k := range m.follows {
		if k.follower == followerID {
			ids = append(ids, k.followee)
		}
	}
	return ids, nil
}

type mockUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint64]*model.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetUser(_ context.Context, id uint64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	u, ok := m.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Name = user.Name
	u.Avatar = user.Avatar
	u.Mobile = user.Mobile
	u.Gender = user.Gender
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id uint64, hashed string) error {
	if u, ok := m.users[id]; ok {
		u.Password = hashed
	}
	return nil
}

func (m *mockUserRepo) UpdateStatus(_ context.Context, id uint64, status string) (int64, error) {
	u, ok := m.users[id]
	if !ok || u.Status == status {
		return 0, nil
	}
	u.Status = status
	return 1, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, _ string, _, _ int) ([]*model.User, int64, error) {
	var all []*model.User
	for _, u := range m.users {
		copied := *u
		all = append(all, &copied)
	}
	return all, int64(len(all)), nil
}

func (m *mockUserRepo) ListActive(_ context.Context) ([]*model.User, error) {
	var all []*model.User
	for _, u := range m.users {
		if u.Status == "active" {
			copied := *u
			all = append(all, &copied)
		}
	}
	return all, nil
}

package service

import (
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/pkg/cursor"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("没有权限操作该评论")
)

// commentStore 评论服务依赖的数据访问面
type commentStore interface {
	Create(comment *model.Comment) error
	GetByID(id int64) (*model.Comment, error)
	DeleteOwned(commentID, userID int64) (bool, error)
	ListByVideo(videoID int64, cur *cursor.Cursor, limit int, viewerID int64) ([]repository.CommentRow, error)
	CountByVideo(videoID int64) (int64, error)
}

type userFinder interface {
	GetByID(id int64) (*model.User, error)
}

type CommentService struct {
	commentStore commentStore
	videoRepo    videoFinder
	userRepo     userFinder
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentStore: commentRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

// Create 发表评论
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		VideoID: videoID,
		Value:   req.Value,
	}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, err
	}

	info := &dto.CommentInfo{
		ID:        comment.ID,
		UserID:    comment.UserID,
		VideoID:   comment.VideoID,
		Value:     comment.Value,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	if user, err := s.userRepo.GetByID(userID); err == nil {
		info.User = dto.OwnerBrief{ID: user.ID, Name: user.Name, AvatarURL: user.AvatarURL}
	}

	return info, nil
}

// Delete 删除评论（仅作者本人）
func (s *CommentService) Delete(commentID, userID int64) error {
	if _, err := s.commentStore.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	deleted, err := s.commentStore.DeleteOwned(commentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNoPermission
	}
	return nil
}

// ListByVideo 视频评论列表（键集分页）。
// 多取一条探测是否还有下一页，有则以最后一条保留行的 (updated_at, id) 编码游标
func (s *CommentService) ListByVideo(videoID int64, cursorStr string, limit int, viewerID int64) (*dto.CommentListData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	cur, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, err
	}
	limit = clampPageLimit(limit)

	rows, err := s.commentStore.ListByVideo(videoID, cur, limit+1, viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.commentStore.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	var nextCursor *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		encoded := (&cursor.Cursor{UpdatedAt: last.UpdatedAt, ID: last.ID}).Encode()
		nextCursor = &encoded
	}

	items := make([]dto.CommentInfo, 0, len(rows))
	for i := range rows {
		items = append(items, toCommentInfo(&rows[i]))
	}

	return &dto.CommentListData{
		Comments:   items,
		NextCursor: nextCursor,
		TotalCount: total,
	}, nil
}

func toCommentInfo(row *repository.CommentRow) dto.CommentInfo {
	return dto.CommentInfo{
		ID:        row.ID,
		UserID:    row.UserID,
		VideoID:   row.VideoID,
		Value:     row.Value,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		User: dto.OwnerBrief{
			ID:        row.UserID,
			Name:      row.UserName,
			AvatarURL: row.UserAvatarURL,
		},
		LikeCount:      row.LikeCount,
		DislikeCount:   row.DislikeCount,
		ViewerReaction: row.ViewerReaction,
	}
}

// clampPageLimit 归一化分页大小
func clampPageLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

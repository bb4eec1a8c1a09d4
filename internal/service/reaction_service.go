package service

import (
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"

	"gorm.io/gorm"
)

var ErrInvalidReactionType = errors.New("不支持的反应类型")

// reactionStore 反应事实表的最小访问面。
// 视频和评论的反应切换走同一套判定，只是落在不同的事实表上
type reactionStore interface {
	GetType(userID, targetID int64) (*string, error)
	Upsert(userID, targetID int64, reactionType string) error
	Delete(userID, targetID int64) (bool, error)
	CountByType(targetID int64, reactionType string) (int64, error)
}

type videoFinder interface {
	GetByID(id int64) (*model.Video, error)
}

type commentFinder interface {
	GetByID(id int64) (*model.Comment, error)
}

type ReactionService struct {
	videoStore   reactionStore
	commentStore reactionStore
	videoRepo    videoFinder
	commentRepo  commentFinder
}

func NewReactionService(
	videoReactionRepo *repository.VideoReactionRepository,
	commentReactionRepo *repository.CommentReactionRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
) *ReactionService {
	return &ReactionService{
		videoStore:   videoReactionStore{repo: videoReactionRepo},
		commentStore: commentReactionStore{repo: commentReactionRepo},
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
	}
}

// ToggleVideoReaction 切换用户对视频的反应
func (s *ReactionService) ToggleVideoReaction(userID, videoID int64, reactionType string) (*dto.ReactionData, error) {
	if reactionType != model.ReactionLike && reactionType != model.ReactionDislike {
		return nil, ErrInvalidReactionType
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	current, err := s.toggle(s.videoStore, userID, videoID, reactionType)
	if err != nil {
		return nil, err
	}

	return s.buildReactionData(s.videoStore, videoID, current)
}

// ToggleCommentReaction 切换用户对评论的反应
func (s *ReactionService) ToggleCommentReaction(userID, commentID int64, reactionType string) (*dto.ReactionData, error) {
	if reactionType != model.ReactionLike && reactionType != model.ReactionDislike {
		return nil, ErrInvalidReactionType
	}

	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	current, err := s.toggle(s.commentStore, userID, commentID, reactionType)
	if err != nil {
		return nil, err
	}

	return s.buildReactionData(s.commentStore, commentID, current)
}

// toggle 反应切换核心语义：
// 已有同类型反应则删除（回到无反应），否则写入新类型，
// 写入用 (user_id, target_id) 冲突键原子覆盖，同一用户对同一目标至多一行。
// 返回切换后的当前反应，nil 表示无反应
func (s *ReactionService) toggle(store reactionStore, userID, targetID int64, reactionType string) (*string, error) {
	existing, err := store.GetType(userID, targetID)
	if err != nil {
		return nil, err
	}

	if existing != nil && *existing == reactionType {
		if _, err := store.Delete(userID, targetID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := store.Upsert(userID, targetID, reactionType); err != nil {
		return nil, err
	}

	current := reactionType
	return &current, nil
}

func (s *ReactionService) buildReactionData(store reactionStore, targetID int64, current *string) (*dto.ReactionData, error) {
	likeCount, err := store.CountByType(targetID, model.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikeCount, err := store.CountByType(targetID, model.ReactionDislike)
	if err != nil {
		return nil, err
	}

	return &dto.ReactionData{
		TargetID:       targetID,
		ViewerReaction: current,
		LikeCount:      likeCount,
		DislikeCount:   dislikeCount,
	}, nil
}

type videoReactionStore struct {
	repo *repository.VideoReactionRepository
}

func (s videoReactionStore) GetType(userID, targetID int64) (*string, error) {
	reaction, err := s.repo.Get(userID, targetID)
	if err != nil || reaction == nil {
		return nil, err
	}
	t := reaction.Type
	return &t, nil
}

func (s videoReactionStore) Upsert(userID, targetID int64, reactionType string) error {
	_, err := s.repo.Upsert(userID, targetID, reactionType)
	return err
}

func (s videoReactionStore) Delete(userID, targetID int64) (bool, error) {
	return s.repo.Delete(userID, targetID)
}

func (s videoReactionStore) CountByType(targetID int64, reactionType string) (int64, error) {
	return s.repo.CountByType(targetID, reactionType)
}

type commentReactionStore struct {
	repo *repository.CommentReactionRepository
}

func (s commentReactionStore) GetType(userID, targetID int64) (*string, error) {
	reaction, err := s.repo.Get(userID, targetID)
	if err != nil || reaction == nil {
		return nil, err
	}
	t := reaction.Type
	return &t, nil
}

func (s commentReactionStore) Upsert(userID, targetID int64, reactionType string) error {
	_, err := s.repo.Upsert(userID, targetID, reactionType)
	return err
}

func (s commentReactionStore) Delete(userID, targetID int64) (bool, error) {
	return s.repo.Delete(userID, targetID)
}

func (s commentReactionStore) CountByType(targetID int64, reactionType string) (int64, error) {
	return s.repo.CountByType(targetID, reactionType)
}

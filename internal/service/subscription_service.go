package service

import (
	"errors"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCannotSubscribeSelf = errors.New("不能订阅自己")
	ErrUserNotFound        = errors.New("用户不存在")
)

// subscriptionStore 订阅服务依赖的数据访问面
type subscriptionStore interface {
	Create(viewerID, creatorID int64) (*model.Subscription, error)
	Delete(viewerID, creatorID int64) (bool, error)
	CountByCreator(creatorID int64) (int64, error)
}

type SubscriptionService struct {
	subStore subscriptionStore
	userRepo userFinder
}

func NewSubscriptionService(
	subRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
) *SubscriptionService {
	return &SubscriptionService{subStore: subRepo, userRepo: userRepo}
}

// Subscribe 订阅创作者。重复订阅是无害幂等操作
func (s *SubscriptionService) Subscribe(viewerID, creatorID int64) (*dto.SubscriptionData, error) {
	if err := s.checkTarget(viewerID, creatorID); err != nil {
		return nil, err
	}

	if _, err := s.subStore.Create(viewerID, creatorID); err != nil {
		return nil, err
	}

	return s.buildData(creatorID, true)
}

// Unsubscribe 取消订阅。未订阅时取消同样幂等
func (s *SubscriptionService) Unsubscribe(viewerID, creatorID int64) (*dto.SubscriptionData, error) {
	if err := s.checkTarget(viewerID, creatorID); err != nil {
		return nil, err
	}

	if _, err := s.subStore.Delete(viewerID, creatorID); err != nil {
		return nil, err
	}

	return s.buildData(creatorID, false)
}

func (s *SubscriptionService) checkTarget(viewerID, creatorID int64) error {
	if viewerID == creatorID {
		return ErrCannotSubscribeSelf
	}
	if _, err := s.userRepo.GetByID(creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *SubscriptionService) buildData(creatorID int64, subscribed bool) (*dto.SubscriptionData, error) {
	count, err := s.subStore.CountByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionData{
		CreatorID:       creatorID,
		Subscribed:      subscribed,
		SubscriberCount: count,
	}, nil
}

package service

import (
	"errors"
	"strings"

	"newtube-go/internal/api/dto"
	"newtube-go/internal/model"
	"newtube-go/internal/repository"
	"newtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 身份服务 Webhook 事件类型
const (
	identityEventCreated = "user.created"
	identityEventUpdated = "user.updated"
	identityEventDeleted = "user.deleted"
)

// userStore 用户服务依赖的数据访问面
type userStore interface {
	GetByExternalID(externalID string) (*model.User, error)
	Create(user *model.User) error
	UpdateByExternalID(externalID string, updates map[string]interface{}) error
	DeleteByExternalID(externalID string) (bool, error)
}

type UserService struct {
	userStore userStore
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userStore: userRepo}
}

// ResolveExternalID 把外部身份服务的用户标识换成本地用户 ID（认证中间件用）
func (s *UserService) ResolveExternalID(externalID string) (int64, error) {
	user, err := s.userStore.GetByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.ID, nil
}

// HandleIdentityEvent 处理身份服务 Webhook 事件。
// Webhook 可能乱序或重放，created/updated 都按"以事件内容为准"幂等落库
func (s *UserService) HandleIdentityEvent(event *dto.IdentityEvent) error {
	switch event.Type {
	case identityEventCreated:
		return s.upsertUser(&event.Data)

	case identityEventUpdated:
		err := s.userStore.UpdateByExternalID(event.Data.ID, map[string]interface{}{
			"name":       displayName(&event.Data),
			"avatar_url": event.Data.ImageURL,
		})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// updated 先于 created 到达
			return s.upsertUser(&event.Data)
		}
		return err

	case identityEventDeleted:
		deleted, err := s.userStore.DeleteByExternalID(event.Data.ID)
		if err != nil {
			return err
		}
		if !deleted {
			logger.Warn("Identity delete for unknown user", zap.String("external_id", event.Data.ID))
		}
		return nil

	default:
		logger.Debug("Ignoring identity event", zap.String("type", event.Type))
		return nil
	}
}

// upsertUser 以事件内容为准落库。
// Create 在 external_id 冲突时覆盖资料，并发投递同一用户不会撞唯一键
func (s *UserService) upsertUser(data *dto.IdentityEventData) error {
	return s.userStore.Create(&model.User{
		ExternalID: data.ID,
		Name:       displayName(data),
		AvatarURL:  data.ImageURL,
	})
}

func displayName(data *dto.IdentityEventData) string {
	name := strings.TrimSpace(strings.TrimSpace(data.FirstName) + " " + strings.TrimSpace(data.LastName))
	if name == "" {
		return "User"
	}
	return name
}

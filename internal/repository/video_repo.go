package repository

import (
	"time"

	"newtube-go/internal/model"
	"newtube-go/pkg/cursor"

	"gorm.io/gorm"
)

// VideoRow 聚合查询返回的视频行：基础列 + 作者投影 + 派生计数 + 请求者视角字段。
// 计数全部来自事实表的相关子查询，不读任何冗余计数列。
type VideoRow struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	CategoryID   *int64     `json:"category_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration"`
	Visibility   string     `json:"visibility"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	PreviewURL   *string    `json:"preview_url"`
	AssetStatus  string     `json:"asset_status"`
	PlaybackID   *string    `json:"playback_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	OwnerName      string  `json:"owner_name"`
	OwnerAvatarURL string  `json:"owner_avatar_url"`

	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`

	SubscriberCount  int64   `json:"subscriber_count"`
	ViewerReaction   *string `json:"viewer_reaction"`
	ViewerSubscribed bool    `json:"viewer_subscribed"`
}

// videoRowColumns 聚合查询的公共 SELECT 列。
// 请求者视角字段来自限定到单个 viewer 的侧查询再 LEFT JOIN，
// 避免按反应/订阅行数扇出基础行；匿名请求传 viewerID = 0，
// 侧查询必然为空集，视角字段按构造即为 NULL
const videoRowColumns = `
	v.id, v.user_id, v.category_id, v.title, v.description, v.duration, v.visibility,
	v.thumbnail_url, v.preview_url, v.asset_status, v.playback_id, v.created_at, v.updated_at,
	u.name AS owner_name, u.avatar_url AS owner_avatar_url,
	(SELECT COUNT(*) FROM video_views vv WHERE vv.video_id = v.id) AS view_count,
	(SELECT COUNT(*) FROM video_reactions vr WHERE vr.video_id = v.id AND vr.type = 'like') AS like_count,
	(SELECT COUNT(*) FROM video_reactions vr WHERE vr.video_id = v.id AND vr.type = 'dislike') AS dislike_count,
	(SELECT COUNT(*) FROM subscriptions s WHERE s.creator_id = v.user_id) AS subscriber_count,
	viewer_reaction.type AS viewer_reaction,
	(viewer_subscription.viewer_id IS NOT NULL) AS viewer_subscribed`

const videoRowJoins = `
	FROM videos v
	INNER JOIN users u ON u.id = v.user_id
	LEFT JOIN (
		SELECT video_id, type FROM video_reactions WHERE user_id = ?
	) viewer_reaction ON viewer_reaction.video_id = v.id
	LEFT JOIN (
		SELECT creator_id, viewer_id FROM subscriptions WHERE viewer_id = ?
	) viewer_subscription ON viewer_subscription.creator_id = v.user_id`

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDAndOwner 根据视频 ID + 作者 ID 查询（权限校验用）
func (r *VideoRepository) GetByIDAndOwner(videoID, ownerID int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND user_id = ?", videoID, ownerID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateOwned 更新视频字段，条件带上作者 ID。
// 影响 0 行时返回 ErrRecordNotFound：调用方无法区分"不存在"与"不属于自己"
func (r *VideoRepository) UpdateOwned(videoID, ownerID int64, updates map[string]interface{}) error {
	result := r.db.Model(&model.Video{}).
		Where("id = ? AND user_id = ?", videoID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned 删除视频（仅作者本人，级联删除观看/反应/评论）
func (r *VideoRepository) DeleteOwned(videoID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", videoID, ownerID).Delete(&model.Video{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByUploadID 按媒体管线上传 ID 查询（Webhook 回写用）
func (r *VideoRepository) GetByUploadID(uploadID string) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("upload_id = ?", uploadID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateByID 按视频 ID 更新（后台任务回写，不做归属校验）
func (r *VideoRepository) UpdateByID(videoID int64, updates map[string]interface{}) error {
	return r.db.Model(&model.Video{}).Where("id = ?", videoID).Updates(updates).Error
}

// UpdateByUploadID 按媒体管线上传 ID 更新（Webhook 回写用）
func (r *VideoRepository) UpdateByUploadID(uploadID string, updates map[string]interface{}) error {
	return r.db.Model(&model.Video{}).Where("upload_id = ?", uploadID).Updates(updates).Error
}

// UpdateByAssetID 按媒体管线资产 ID 更新（Webhook 回写用）
func (r *VideoRepository) UpdateByAssetID(assetID string, updates map[string]interface{}) error {
	return r.db.Model(&model.Video{}).Where("asset_id = ?", assetID).Updates(updates).Error
}

// DeleteByUploadID 按上传 ID 删除（媒体管线资产被删时）
func (r *VideoRepository) DeleteByUploadID(uploadID string) error {
	return r.db.Where("upload_id = ?", uploadID).Delete(&model.Video{}).Error
}

// GetDetail 获取单个视频的聚合视图
// viewerID 为请求者用户 ID，匿名传 0
func (r *VideoRepository) GetDetail(videoID, viewerID int64) (*VideoRow, error) {
	var rows []VideoRow
	err := r.db.Raw(
		"SELECT"+videoRowColumns+videoRowJoins+" WHERE v.id = ?",
		viewerID, viewerID, videoID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// ListPublic 公开视频流（键集分页，(updated_at, id) 双键降序）
// limit 由调用方多取一条以判断是否有下一页
func (r *VideoRepository) ListPublic(categoryID *int64, cur *cursor.Cursor, limit int, viewerID int64) ([]VideoRow, error) {
	sql := "SELECT" + videoRowColumns + videoRowJoins +
		" WHERE v.visibility = 'public'"
	args := []interface{}{viewerID, viewerID}

	if categoryID != nil {
		sql += " AND v.category_id = ?"
		args = append(args, *categoryID)
	}
	if cur != nil {
		sql += " AND (v.updated_at < ? OR (v.updated_at = ? AND v.id < ?))"
		args = append(args, cur.UpdatedAt, cur.UpdatedAt, cur.ID)
	}

	sql += " ORDER BY v.updated_at DESC, v.id DESC LIMIT ?"
	args = append(args, limit)

	var rows []VideoRow
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// CountPublic 公开视频总数（不受游标过滤，供客户端显示稳定总量）
func (r *VideoRepository) CountPublic(categoryID *int64) (int64, error) {
	query := r.db.Model(&model.Video{}).Where("visibility = ?", model.VisibilityPublic)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ListByOwner 作者自己的视频列表（创作后台，含未公开视频）
func (r *VideoRepository) ListByOwner(ownerID int64, cur *cursor.Cursor, limit int) ([]VideoRow, error) {
	sql := "SELECT" + videoRowColumns + videoRowJoins + " WHERE v.user_id = ?"
	args := []interface{}{ownerID, ownerID, ownerID}

	if cur != nil {
		sql += " AND (v.updated_at < ? OR (v.updated_at = ? AND v.id < ?))"
		args = append(args, cur.UpdatedAt, cur.UpdatedAt, cur.ID)
	}

	sql += " ORDER BY v.updated_at DESC, v.id DESC LIMIT ?"
	args = append(args, limit)

	var rows []VideoRow
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// CountByOwner 作者视频总数
func (r *VideoRepository) CountByOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}

// SearchPublic 按标题/描述模糊搜索公开视频（ES 不可用时的降级路径）
func (r *VideoRepository) SearchPublic(keyword string, skip, limit int, viewerID int64) ([]VideoRow, int64, error) {
	pattern := "%" + keyword + "%"

	var total int64
	err := r.db.Model(&model.Video{}).
		Where("visibility = ? AND (title ILIKE ? OR description ILIKE ?)",
			model.VisibilityPublic, pattern, pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	sql := "SELECT" + videoRowColumns + videoRowJoins +
		" WHERE v.visibility = 'public' AND (v.title ILIKE ? OR v.description ILIKE ?)" +
		" ORDER BY v.updated_at DESC, v.id DESC OFFSET ? LIMIT ?"

	var rows []VideoRow
	err = r.db.Raw(sql, viewerID, viewerID, pattern, pattern, skip, limit).Scan(&rows).Error
	return rows, total, err
}

// GetRowsByIDs 按 ID 列表获取聚合行（ES 搜索命中后回表，保持入参顺序由调用方处理）
func (r *VideoRepository) GetRowsByIDs(ids []int64, viewerID int64) ([]VideoRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []VideoRow
	err := r.db.Raw(
		"SELECT"+videoRowColumns+videoRowJoins+" WHERE v.id IN ?",
		viewerID, viewerID, ids,
	).Scan(&rows).Error
	return rows, err
}

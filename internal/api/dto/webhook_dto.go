package dto

// IdentityEvent 身份服务 Webhook 事件
// 事件类型：user.created / user.updated / user.deleted
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

// IdentityEventData 身份事件负载
type IdentityEventData struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
}

// MediaEvent 媒体管线 Webhook 事件
// 事件类型：video.asset.created / video.asset.ready / video.asset.errored /
// video.asset.deleted / video.asset.track.ready
type MediaEvent struct {
	Type string         `json:"type"`
	Data MediaEventData `json:"data"`
}

// MediaEventData 媒体事件负载。
// asset.* 事件中 ID 为资产 ID；track.ready 中 ID 为轨道 ID、AssetID 为所属资产
type MediaEventData struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	UploadID    string            `json:"upload_id"`
	AssetID     string            `json:"asset_id"`
	Duration    float64           `json:"duration"`
	PlaybackIDs []MediaPlaybackID `json:"playback_ids"`
}

// MediaPlaybackID 播放标识
type MediaPlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

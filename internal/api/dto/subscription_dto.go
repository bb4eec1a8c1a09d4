package dto

// SubscriptionData 订阅操作结果
type SubscriptionData struct {
	CreatorID       int64 `json:"creator_id"`
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

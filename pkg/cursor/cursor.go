// Package cursor 实现列表接口的键集分页游标。
// 游标携带上一页最后一条记录的 (updated_at, id) 排序键，
// 对外序列化为 base64(JSON) 的不透明字符串。
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// ErrInvalidCursor 游标无法解析
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor 键集分页游标
type Cursor struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        int64     `json:"id"`
}

// Encode 序列化为不透明字符串
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode 解析不透明字符串，空串返回 nil 游标（首页）
func Decode(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, ErrInvalidCursor
	}
	if c.ID <= 0 || c.UpdatedAt.IsZero() {
		return nil, ErrInvalidCursor
	}

	return &c, nil
}

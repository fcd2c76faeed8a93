package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notice 错误通知负载
//
// Notice 是库自带的标准负载实现：一条带唯一标识的错误记录。
// 创建后不应再修改（入队即冻结）。
type Notice struct {
	// id 唯一标识，创建时生成
	id string

	// ErrorClass 错误类型名
	ErrorClass string

	// ErrorMessage 错误描述
	ErrorMessage string

	// Backtrace 调用栈（可选）
	Backtrace []string

	// Context 业务上下文（可选）
	Context map[string]any

	// OccurredAt 错误发生时间
	OccurredAt time.Time
}

var _ Payload = (*Notice)(nil)

// NewNotice 创建错误通知
func NewNotice(errorClass, errorMessage string) *Notice {
	return &Notice{
		id:           uuid.New().String(),
		ErrorClass:   errorClass,
		ErrorMessage: errorMessage,
		OccurredAt:   time.Now().UTC(),
	}
}

// NewNoticeFromError 从 error 创建错误通知
func NewNoticeFromError(err error) *Notice {
	return NewNotice("error", err.Error())
}

// ID 返回通知的唯一标识
func (n *Notice) ID() string {
	return n.id
}

// WithBacktrace 附加调用栈
func (n *Notice) WithBacktrace(frames []string) *Notice {
	n.Backtrace = frames
	return n
}

// WithContext 附加业务上下文
func (n *Notice) WithContext(ctx map[string]any) *Notice {
	n.Context = ctx
	return n
}

// MarshalJSON 实现 json.Marshaler
func (n *Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           string         `json:"id"`
		ErrorClass   string         `json:"error_class"`
		ErrorMessage string         `json:"error_message"`
		Backtrace    []string       `json:"backtrace,omitempty"`
		Context      map[string]any `json:"context,omitempty"`
		OccurredAt   time.Time      `json:"occurred_at"`
	}{
		ID:           n.id,
		ErrorClass:   n.ErrorClass,
		ErrorMessage: n.ErrorMessage,
		Backtrace:    n.Backtrace,
		Context:      n.Context,
		OccurredAt:   n.OccurredAt,
	})
}

package honeybadger

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrStartRefused 启动被拒绝（停摆窗口生效中，或已请求关闭）
	ErrStartRefused = errors.New("start refused: shutdown pending or suspend window active")

	// ErrAgentClosed Agent 已关闭
	ErrAgentClosed = errors.New("agent closed")
)

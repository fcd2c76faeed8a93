package worker

import "github.com/pcreux/honeybadger-go/pkg/types"

// Action 响应分类结果
//
// 分类是从后端响应到动作的纯映射，整张决策表就是全部的
// 自适应控制策略：瞬时过载逐级退避、逐级恢复，账户级失败
// 则完全停摆并冷却。
type Action int

const (
	// ActionSuccess 已接受（201）：降低节流级别
	ActionSuccess Action = iota

	// ActionThrottle 限流或不可用（429/503）：提升节流级别
	ActionThrottle

	// ActionSuspend 账户级失败（402/403）：停摆一个冷却窗口
	ActionSuspend

	// ActionStubbed 模拟成功：记录"本应上报"
	ActionStubbed

	// ActionFailure 传输错误：记录警告
	ActionFailure

	// ActionUnknown 无法识别的状态码：记录警告
	ActionUnknown
)

// String 返回动作的字符串表示
func (a Action) String() string {
	switch a {
	case ActionSuccess:
		return "success"
	case ActionThrottle:
		return "throttle"
	case ActionSuspend:
		return "suspend"
	case ActionStubbed:
		return "stubbed"
	case ActionFailure:
		return "failure"
	case ActionUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Classify 把后端响应映射为动作
//
// 对 Response 的封闭变体做穷尽匹配，无副作用。
func Classify(r types.Response) Action {
	switch r.Kind {
	case types.ResponseStubbed:
		return ActionStubbed
	case types.ResponseError:
		return ActionFailure
	case types.ResponseHTTP:
		switch r.Code {
		case 429, 503:
			return ActionThrottle
		case 402, 403:
			return ActionSuspend
		case 201:
			return ActionSuccess
		default:
			return ActionUnknown
		}
	default:
		return ActionUnknown
	}
}

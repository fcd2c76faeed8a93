package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcreux/honeybadger-go/pkg/types"
)

// TestClassify 测试响应分类决策表
func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		resp types.Response
		want Action
	}{
		{"RateLimited_429", types.NewHTTPResponse(429, "too many requests"), ActionThrottle},
		{"Unavailable_503", types.NewHTTPResponse(503, "service unavailable"), ActionThrottle},
		{"PaymentRequired_402", types.NewHTTPResponse(402, "payment required"), ActionSuspend},
		{"InvalidCredentials_403", types.NewHTTPResponse(403, "forbidden"), ActionSuspend},
		{"Accepted_201", types.NewHTTPResponse(201, "created"), ActionSuccess},
		{"Unknown_500", types.NewHTTPResponse(500, "internal error"), ActionUnknown},
		{"Unknown_200", types.NewHTTPResponse(200, "ok"), ActionUnknown},
		{"Stubbed", types.NewStubbedResponse(), ActionStubbed},
		{"TransportError", types.NewErrorResponse("connection refused"), ActionFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.resp))
		})
	}

	t.Log("✅ 分类决策表测试通过")
}

// TestAction_String 测试动作的字符串表示
func TestAction_String(t *testing.T) {
	assert.Equal(t, "success", ActionSuccess.String())
	assert.Equal(t, "throttle", ActionThrottle.String())
	assert.Equal(t, "suspend", ActionSuspend.String())
	assert.Equal(t, "stubbed", ActionStubbed.String())
	assert.Equal(t, "failure", ActionFailure.String())
	assert.Equal(t, "unknown", ActionUnknown.String())
}

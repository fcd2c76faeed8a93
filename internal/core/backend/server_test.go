package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

// testPayload 测试负载
type testPayload struct {
	Identifier string `json:"id"`
	Message    string `json:"message"`
}

func (p testPayload) ID() string { return p.Identifier }

func newTestServer(t *testing.T, endpoint string) *Server {
	t.Helper()

	cfg := config.DefaultBackendConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-api-key"
	return NewServer(cfg)
}

// ============================================================================
// HTTP 后端
// ============================================================================

// TestServer_Notify 测试投递请求的构造与响应转换
func TestServer_Notify(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody testPayload

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"remote-1"}`))
	}))
	defer ts.Close()

	s := newTestServer(t, ts.URL)
	resp := s.Notify(context.Background(), types.TopicNotices, testPayload{
		Identifier: "p-1",
		Message:    "something broke",
	})

	assert.Equal(t, types.ResponseHTTP, resp.Kind)
	assert.Equal(t, 201, resp.Code)
	assert.Equal(t, `{"id":"remote-1"}`, resp.Message)

	assert.Equal(t, "/v1/notices", gotPath)
	assert.Equal(t, "test-api-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "p-1", gotBody.Identifier)

	t.Log("✅ HTTP 后端投递测试通过")
}

// TestServer_NotifyStatusPassthrough 测试状态码原样透传给分类器
func TestServer_NotifyStatusPassthrough(t *testing.T) {
	for _, code := range []int{201, 402, 403, 429, 500, 503} {
		code := code
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		}))

		s := newTestServer(t, ts.URL)
		resp := s.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "p"})
		assert.Equal(t, types.ResponseHTTP, resp.Kind)
		assert.Equal(t, code, resp.Code)

		ts.Close()
	}
}

// TestServer_NotifyConnectionError 测试连接失败编码为错误响应
func TestServer_NotifyConnectionError(t *testing.T) {
	// 指向已关闭的监听端口
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	s := newTestServer(t, url)
	resp := s.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "p"})

	assert.Equal(t, types.ResponseError, resp.Kind)
	assert.Contains(t, resp.Message, "request failed")

	t.Log("✅ 连接失败测试通过")
}

// TestServer_NotifyContextCanceled 测试在途请求可被 context 取消
func TestServer_NotifyContextCanceled(t *testing.T) {
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer ts.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	s := newTestServer(t, ts.URL)
	resp := s.Notify(ctx, types.TopicNotices, testPayload{Identifier: "p"})

	assert.Equal(t, types.ResponseError, resp.Kind)
}

// ============================================================================
// 开发模式后端
// ============================================================================

// TestNull_Notify 测试开发模式后端返回模拟成功
func TestNull_Notify(t *testing.T) {
	n := NewNull()
	resp := n.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "p"})

	assert.Equal(t, types.ResponseStubbed, resp.Kind)
}

// ============================================================================
// 测试后端
// ============================================================================

// TestMemory_ScriptAndRecord 测试脚本响应与投递记录
func TestMemory_ScriptAndRecord(t *testing.T) {
	m := NewMemory()
	m.Script(
		types.NewHTTPResponse(429, "rate limited"),
		types.NewErrorResponse("boom"),
	)

	r1 := m.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "a"})
	r2 := m.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "b"})
	r3 := m.Notify(context.Background(), types.TopicNotices, testPayload{Identifier: "c"})

	// 脚本按序消耗，耗尽后回落到成功
	assert.Equal(t, 429, r1.Code)
	assert.Equal(t, types.ResponseError, r2.Kind)
	assert.Equal(t, 201, r3.Code)

	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []string{"a", "b", "c"}, m.PayloadIDs())
}

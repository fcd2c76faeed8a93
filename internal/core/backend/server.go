// Package backend 实现后端传输
//
// 提供三种 Backend 实现：
//   - Server: 真实 HTTP 后端，把负载 POST 到远端 API
//   - Null: 开发模式后端，只记录日志，返回模拟成功
//   - Memory: 测试后端，记录所有投递并按脚本返回响应
//
// 所有实现都不返回 error：传输失败编码为 ResponseError 分类，
// 由投递核心的分类器统一处理。
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pcreux/honeybadger-go/config"
	"github.com/pcreux/honeybadger-go/pkg/interfaces"
	"github.com/pcreux/honeybadger-go/pkg/lib/log"
	"github.com/pcreux/honeybadger-go/pkg/types"
)

var logger = log.Logger("core/backend")

// maxResponseBody 读取响应体的上限（仅用于日志说明）
const maxResponseBody = 512

// Server HTTP 后端
type Server struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ interfaces.Backend = (*Server)(nil)

// NewServer 根据配置创建 HTTP 后端
func NewServer(cfg config.BackendConfig) *Server {
	return &Server{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Notify 把负载 POST 到 <endpoint>/v1/<topic>
func (s *Server) Notify(ctx context.Context, topic types.Topic, payload types.Payload) types.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return types.NewErrorResponse(fmt.Sprintf("marshal payload: %v", err))
	}

	url := fmt.Sprintf("%s/v1/%s", s.endpoint, topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return types.NewErrorResponse(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return types.NewErrorResponse(fmt.Sprintf("request failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	logger.Debug("投递请求完成", "id", payload.ID(), "code", resp.StatusCode)

	return types.NewHTTPResponse(resp.StatusCode, string(detail))
}

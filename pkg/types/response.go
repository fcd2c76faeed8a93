// Package types 定义 honeybadger 的公共数据类型
//
// 包含后端响应的封闭变体类型、主题和负载类型。
// 各包之间仅通过这里的类型交换数据，避免循环依赖。
package types

import "fmt"

// ════════════════════════════════════════════════════════════════════════════
//                              后端响应
// ════════════════════════════════════════════════════════════════════════════

// ResponseKind 响应分类
//
// 后端的投递结果是一个封闭变体：要么携带真实 HTTP 状态码，
// 要么是两种哨兵分类之一（模拟成功 / 传输错误）。
// 分类器据此做穷尽匹配。
type ResponseKind int

const (
	// ResponseHTTP 真实 HTTP 响应，状态码在 Response.Code 中
	ResponseHTTP ResponseKind = iota

	// ResponseStubbed 模拟成功（开发模式下未真正上报）
	ResponseStubbed

	// ResponseError 传输层错误（请求未能得到状态码）
	ResponseError
)

// String 返回分类的字符串表示
func (k ResponseKind) String() string {
	switch k {
	case ResponseHTTP:
		return "http"
	case ResponseStubbed:
		return "stubbed"
	case ResponseError:
		return "error"
	default:
		return "unknown"
	}
}

// Response 后端投递结果
//
// Code 仅在 Kind == ResponseHTTP 时有意义。
type Response struct {
	// Kind 响应分类
	Kind ResponseKind

	// Code HTTP 状态码
	Code int

	// Message 人类可读的说明
	Message string
}

// NewHTTPResponse 构造携带状态码的响应
func NewHTTPResponse(code int, message string) Response {
	return Response{Kind: ResponseHTTP, Code: code, Message: message}
}

// NewStubbedResponse 构造模拟成功响应
func NewStubbedResponse() Response {
	return Response{Kind: ResponseStubbed, Message: "notice not actually reported"}
}

// NewErrorResponse 构造传输错误响应
func NewErrorResponse(message string) Response {
	return Response{Kind: ResponseError, Message: message}
}

// String 返回响应的字符串表示（用于日志）
func (r Response) String() string {
	if r.Kind == ResponseHTTP {
		return fmt.Sprintf("http %d: %s", r.Code, r.Message)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Message)
}

// ════════════════════════════════════════════════════════════════════════════
//                              主题与负载
// ════════════════════════════════════════════════════════════════════════════

// Topic 投递主题，决定后端的目标端点
type Topic string

const (
	// TopicNotices 错误通知主题
	TopicNotices Topic = "notices"
)

// Payload 可投递的负载
//
// 负载在入队前由生产者持有，入队后归队列/消费者所有，
// 投递或丢弃前不可变。实现方只需提供稳定标识。
type Payload interface {
	// ID 返回负载的稳定标识（用于日志关联）
	ID() string
}

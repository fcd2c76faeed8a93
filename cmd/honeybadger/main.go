// Package main 提供 honeybadger 命令行入口
//
// 用于验证项目配置：向后端发送一条测试通知并等待投递完成。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	honeybadger "github.com/pcreux/honeybadger-go"
	"github.com/pcreux/honeybadger-go/pkg/lib/log"
)

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
var (
	apiKey      = flag.String("api-key", "", "项目 API 密钥（默认读取 HONEYBADGER_API_KEY）")
	endpoint    = flag.String("endpoint", "", "后端 API 根地址（默认使用官方地址）")
	message     = flag.String("message", "Test notice from honeybadger CLI", "测试通知内容")
	development = flag.Bool("dev", false, "开发模式（不真正上报，仅记录日志）")
	verbose     = flag.Bool("verbose", false, "输出调试日志")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetOutputWithLevel(os.Stderr, log.LevelDebug)
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("HONEYBADGER_API_KEY")
	}

	opts := []honeybadger.Option{}
	if key != "" {
		opts = append(opts, honeybadger.WithAPIKey(key))
	}
	if *endpoint != "" {
		opts = append(opts, honeybadger.WithEndpoint(*endpoint))
	}
	if *development {
		opts = append(opts, honeybadger.WithDevelopment())
	}

	agent, err := honeybadger.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "装配 agent 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = agent.Close() }()

	notice := honeybadger.NewNotice("HoneybadgerTestError", *message).
		WithContext(map[string]any{
			"source":  "honeybadger-cli",
			"sent_at": time.Now().UTC().Format(time.RFC3339),
		})

	if !agent.NotifyPayload(notice) {
		fmt.Fprintln(os.Stderr, "测试通知入队失败")
		os.Exit(1)
	}

	agent.Flush()
	fmt.Printf("测试通知已投递 (ID: %s)\n", notice.ID())
}

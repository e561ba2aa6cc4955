// Package logging 统一配置游戏的结构化日志
//
// 所有组件通过 For() 获取带 component 字段的 logrus.Entry，
// 由 Setup() 决定输出位置与级别。
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup 配置全局 logrus 实例
//
// 参数:
//   - verbose: 为 true 时输出 Debug 级别日志，否则只输出 Warn 及以上
//   - out: 日志输出目标（通常为 os.Stderr）
func Setup(verbose bool, out io.Writer) {
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// For 返回带组件名的日志入口
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

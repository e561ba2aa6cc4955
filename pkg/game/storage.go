package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// StorageAppName gdata 存储目录名
const StorageAppName = "pong"

// OpenStorage 打开跨平台持久化存储
//
// 失败不是致命错误：调用方应以 nil 继续运行（降级模式，仅内存数据）。
func OpenStorage(appName string) (*gdata.Manager, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	return manager, nil
}

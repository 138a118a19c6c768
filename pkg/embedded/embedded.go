// Package embedded 提供随程序嵌入的配置文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置。
//
// 只有 data/ 下的配置被嵌入；assets/ 下的贴图与音效从磁盘读取，
// 缺失时由资源管理器生成占位图或静默。未调用 Init 时所有路径都从磁盘读取。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 注册嵌入的 data 文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀（fs.FS 使用正斜杠）
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// ReadFile 读取文件内容
// data/ 路径优先从嵌入文件系统读取，读取失败时回退到磁盘；其他路径直接读磁盘
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)

	if initialized && strings.HasPrefix(path, dataPrefix) {
		data, err := fs.ReadFile(dataFS, path)
		if err == nil {
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在于嵌入文件系统或磁盘
func Exists(path string) bool {
	path = normalize(path)

	if initialized && strings.HasPrefix(path, dataPrefix) {
		if _, err := fs.Stat(dataFS, path); err == nil {
			return true
		}
	}
	_, err := os.Stat(path)
	return err == nil
}

// Reset 清除注册的文件系统（测试用）
func Reset() {
	dataFS = nil
	initialized = false
}

//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 不带 -tags mobile 时 mobile.go 与 embed.go 都不参与编译，
// 这里只保留 Dummy，让 go vet ./... 等命令能正常遍历该包。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}

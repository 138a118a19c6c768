//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/ 复制到 mobile/data/：
//
//	cp -r data mobile/
package mobile

import "embed"

//go:embed data/mascot.yaml data/resources.yaml
var dataFS embed.FS

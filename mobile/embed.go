//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/greeting.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/greeting.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/greeting.yaml
var dataFS embed.FS

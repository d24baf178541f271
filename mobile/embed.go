//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/ 复制到此目录：
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -o build/portfolio.aar ./mobile
package mobile

import "embed"

//go:embed data/motion.yaml data/content.yaml
var dataFS embed.FS

//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 普通 go build ./... 也会遍历本目录；没有 -tags mobile 时
// 只编译此文件，避免缺少 mobile/data 导致嵌入失败。
package mobile

// Dummy 保证包在桌面端构建时非空
func Dummy() {}

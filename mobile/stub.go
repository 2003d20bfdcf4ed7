//go:build !mobile

// 普通构建时 mobile 包只保留 Dummy，绑定代码在 mobile.go 中
package mobile

// Dummy 空导出函数，让包在非移动端构建时也能被引用
func Dummy() {}

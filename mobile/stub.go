//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 桌面端由 main.go 启动，这里只保留包的导出符号，
// 让 go build ./... 在不带 -tags mobile 时也能通过。
// 移动端入口见 mobile.go：用嵌入的 data/game.yaml 初始化 embedded 包，
// 再把 app.NewApp 创建的游戏交给 ebitenmobile。
package mobile

// Dummy 与 mobile.go 中的同名函数对应，桌面端不做任何事
func Dummy() {}

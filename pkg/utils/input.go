// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput 键盘输入来源
// 场景和系统只依赖这个接口，测试中可以替换为脚本化的实现
type KeyInput interface {
	// IsKeyJustPressed 本帧是否刚按下指定按键
	IsKeyJustPressed(key ebiten.Key) bool
	// AnyKeyJustPressed 本帧是否刚按下任意按键
	AnyKeyJustPressed() bool
}

// KeyboardInput 基于 inpututil 的真实键盘输入
type KeyboardInput struct {
	keys []ebiten.Key // 复用的缓冲区
}

// NewKeyboardInput 创建键盘输入
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{keys: make([]ebiten.Key, 0, 8)}
}

// IsKeyJustPressed 本帧是否刚按下指定按键
func (k *KeyboardInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// AnyKeyJustPressed 本帧是否刚按下任意按键
func (k *KeyboardInput) AnyKeyJustPressed() bool {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	return len(k.keys) > 0
}

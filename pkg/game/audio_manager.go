package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// 音效ID
const (
	SoundShoot      = "shoot"
	SoundEnemyShoot = "enemy_shoot"
	SoundExplosion  = "explosion"
	SoundBonus      = "bonus"
	SoundGameOver   = "game_over"
)

// toneSpec 合成音效参数（频率从 StartHz 线性滑到 EndHz）
type toneSpec struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // 秒
}

var toneSpecs = map[string]toneSpec{
	SoundShoot:      {StartHz: 880, EndHz: 440, Duration: 0.08},
	SoundEnemyShoot: {StartHz: 330, EndHz: 220, Duration: 0.08},
	SoundExplosion:  {StartHz: 180, EndHz: 60, Duration: 0.18},
	SoundBonus:      {StartHz: 520, EndHz: 1040, Duration: 0.25},
	SoundGameOver:   {StartHz: 440, EndHz: 110, Duration: 0.6},
}

// AudioManager 音频管理器
// 职责：
//   - 在启动时合成所有音效的 PCM 数据
//   - 用资源配置中声明的音频文件替换合成音
//   - 提供按音效ID播放的接口
//
// nil 的 *AudioManager 是合法的，所有方法都是空操作（用于测试和禁用音效）
type AudioManager struct {
	context *audio.Context
	enabled bool
	volume  float64
	pcm     map[string][]byte
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时音效被禁用
//   - cfg: 音效配置
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	am := &AudioManager{
		context: ctx,
		enabled: cfg.Enabled && ctx != nil,
		volume:  cfg.Volume,
		pcm:     make(map[string][]byte, len(toneSpecs)),
	}
	if !am.enabled {
		return am
	}

	for id, spec := range toneSpecs {
		am.pcm[id] = SynthesizeTone(ctx.SampleRate(), spec.StartHz, spec.EndHz, spec.Duration, 1.0)
	}
	log.Printf("[AudioManager] Synthesized %d sound effects", len(am.pcm))
	return am
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || !am.enabled {
		return false
	}

	data, ok := am.pcm[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", soundID)
		return false
	}

	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// LoadSounds 解码资源配置中声明的音效文件，替换对应的合成音
//
// 文件整体读入内存并重采样到音频上下文的采样率。
// 音效被禁用时直接返回 nil；任何文件缺失或无法解码都返回错误（启动失败）。
func (am *AudioManager) LoadSounds(assets config.AssetsConfig) error {
	if am == nil || !am.enabled || len(assets.Sounds) == 0 {
		return nil
	}

	ids := make([]string, 0, len(assets.Sounds))
	for id := range assets.Sounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, known := toneSpecs[id]; !known {
			return fmt.Errorf("unknown sound id %q in assets config", id)
		}
		path := filepath.Join(assets.Dir, assets.Sounds[id])
		pcm, err := DecodeSoundFile(path, am.context.SampleRate())
		if err != nil {
			return err
		}
		am.pcm[id] = pcm
		log.Printf("[AudioManager] Loaded sound %s from %s (%d bytes)", id, path, len(pcm))
	}
	return nil
}

// DecodeSoundFile 读取并解码音频文件，返回 16 位小端立体声 PCM
// 支持的格式：.mp3、.ogg、.wav
func DecodeSoundFile(path string, sampleRate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	return pcm, nil
}

// SynthesizeTone 生成 16 位小端立体声 PCM 方波，频率线性滑动并带线性淡出
//
// 参数：
//   - sampleRate: 采样率
//   - startHz, endHz: 起止频率
//   - duration: 时长（秒）
//   - amplitude: 振幅 0.0 ~ 1.0
func SynthesizeTone(sampleRate int, startHz, endHz, duration, amplitude float64) []byte {
	samples := int(float64(sampleRate) * duration)
	if samples <= 0 {
		return nil
	}

	buf := make([]byte, samples*4)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := startHz + (endHz-startHz)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := amplitude * (1 - t)
		if phase >= 0.5 {
			v = -v
		}
		sample := int16(v * math.MaxInt16 * 0.3)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}

package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gonewx/pong/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var audioLog = logging.For("AudioManager")

// SampleRate 全局音频采样率
const SampleRate = 48000

// SoundID 音效标识
type SoundID int

const (
	// SoundPaddleHit 球击中球拍
	SoundPaddleHit SoundID = iota
	// SoundWallBounce 球碰到上下边界
	SoundWallBounce
	// SoundScore 得分
	SoundScore
	// SoundWin 比赛结束
	SoundWin
)

// Tone 一段方波音
type Tone struct {
	Frequency float64       // 频率（Hz）
	Duration  time.Duration // 时长
}

// soundTones 每种音效对应的音高与时长
var soundTones = map[SoundID]Tone{
	SoundPaddleHit:  {Frequency: 440, Duration: 60 * time.Millisecond},
	SoundWallBounce: {Frequency: 220, Duration: 40 * time.Millisecond},
	SoundScore:      {Frequency: 660, Duration: 250 * time.Millisecond},
	SoundWin:        {Frequency: 880, Duration: 600 * time.Millisecond},
}

// SynthesizeTone 生成 16 位小端立体声 PCM 方波
// 末尾 10% 线性淡出，避免爆音
func SynthesizeTone(sampleRate int, tone Tone) []byte {
	frames := int(float64(sampleRate) * tone.Duration.Seconds())
	if frames <= 0 || tone.Frequency <= 0 {
		return nil
	}

	const amplitude = 0.3 * math.MaxInt16
	fadeStart := frames - frames/10
	buf := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		phase := math.Mod(float64(i)*tone.Frequency/float64(sampleRate), 1)
		v := amplitude
		if phase >= 0.5 {
			v = -amplitude
		}
		if i >= fadeStart {
			v *= float64(frames-i) / float64(frames-fadeStart)
		}
		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// AudioManager 音效管理器
// 职责：
//   - 预先合成所有音效并缓存播放器
//   - 播放时应用 SettingsManager 中的音效开关与音量
//
// context 为 nil 时所有播放调用静默返回 false（静音模式）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil
	players         map[SoundID]*audio.Player
	masterVolume    float64 // 与设置中的音量相乘
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - ctx: 全局音频上下文，可为 nil（静音）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[SoundID]*audio.Player),
		masterVolume:    1,
	}
	if ctx == nil {
		return am
	}

	for id, tone := range soundTones {
		am.players[id] = audio.NewPlayerFromBytes(ctx, SynthesizeTone(ctx.SampleRate(), tone))
	}
	return am
}

// SetMasterVolume 设置主音量，限制在 0.0 ~ 1.0
func (am *AudioManager) SetMasterVolume(volume float64) {
	am.masterVolume = clampVolume(volume)
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.context == nil {
		return false
	}

	volume := am.masterVolume
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume *= settings.SoundVolume
	}

	player, ok := am.players[id]
	if !ok {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		audioLog.WithError(err).WithField("sound", id).Warn("failed to rewind sound")
	}
	player.Play()
	return true
}

// Close 释放所有播放器
func (am *AudioManager) Close() error {
	if am == nil {
		return nil
	}
	for id, player := range am.players {
		if err := player.Close(); err != nil {
			audioLog.WithError(err).WithField("sound", id).Warn("failed to close player")
		}
		delete(am.players, id)
	}
	return nil
}

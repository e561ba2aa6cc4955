package game

import (
	"fmt"

	"github.com/gonewx/pong/pkg/components"
)

// MatchPhase 比赛状态机的状态
type MatchPhase int

const (
	// PhaseRunning 比赛进行中
	PhaseRunning MatchPhase = iota
	// PhaseTerminated 比赛结束（退出或分出胜负），不可恢复
	PhaseTerminated
)

// String 返回状态名称
func (p MatchPhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("MatchPhase(%d)", int(p))
	}
}

// TerminationReason 比赛结束原因
type TerminationReason int

const (
	// ReasonNone 尚未结束
	ReasonNone TerminationReason = iota
	// ReasonQuit 玩家关闭窗口
	ReasonQuit
	// ReasonLeftWins 左侧玩家获胜
	ReasonLeftWins
	// ReasonRightWins 右侧玩家获胜
	ReasonRightWins
)

// String 返回结束原因描述
func (r TerminationReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuit:
		return "quit"
	case ReasonLeftWins:
		return "left wins"
	case ReasonRightWins:
		return "right wins"
	default:
		return fmt.Sprintf("TerminationReason(%d)", int(r))
	}
}

// MatchState 一局比赛的状态：比分与 Running/Terminated 状态机
//
// 比分只增不减，每次得分恰好 +1；任意一方达到 winningScore 后比赛结束。
// 单线程使用，不做同步。
type MatchState struct {
	leftScore    int
	rightScore   int
	winningScore int
	separator    string

	phase         MatchPhase
	reason        TerminationReason
	quitRequested bool
}

// NewMatchState 创建比分为 0:0 的比赛状态
//
// 参数:
//   - winningScore: 获胜分数（原版为 10）
//   - separator: 比分文字中左右分数之间的分隔字符串
func NewMatchState(winningScore int, separator string) *MatchState {
	return &MatchState{
		winningScore: winningScore,
		separator:    separator,
		phase:        PhaseRunning,
	}
}

// LeftScore 返回左侧得分
func (m *MatchState) LeftScore() int { return m.leftScore }

// RightScore 返回右侧得分
func (m *MatchState) RightScore() int { return m.rightScore }

// WinningScore 返回获胜分数
func (m *MatchState) WinningScore() int { return m.winningScore }

// Phase 返回当前状态
func (m *MatchState) Phase() MatchPhase { return m.phase }

// Reason 返回结束原因，进行中时为 ReasonNone
func (m *MatchState) Reason() TerminationReason { return m.reason }

// IsRunning 比赛是否仍在进行
func (m *MatchState) IsRunning() bool { return m.phase == PhaseRunning }

// Award 为指定一方加 1 分
// 比赛结束后调用无效，返回是否计分
func (m *MatchState) Award(side components.Side) bool {
	if m.phase != PhaseRunning {
		return false
	}
	if side == components.SideRight {
		m.rightScore++
	} else {
		m.leftScore++
	}
	return true
}

// ScoreLine 返回控制台比分行，例如 "Left: 3, Right: 2"
func (m *MatchState) ScoreLine() string {
	return fmt.Sprintf("Left: %d, Right: %d", m.leftScore, m.rightScore)
}

// ScoreText 返回屏幕上显示的比分文字，例如 "3        2"
func (m *MatchState) ScoreText() string {
	return fmt.Sprintf("%d%s%d", m.leftScore, m.separator, m.rightScore)
}

// RequestQuit 记录退出请求
// 退出在下一次 Update 开始时生效，因此当前帧仍会被绘制
func (m *MatchState) RequestQuit() {
	m.quitRequested = true
}

// QuitRequested 是否有待处理的退出请求
func (m *MatchState) QuitRequested() bool {
	return m.quitRequested
}

// ApplyQuit 若有退出请求则结束比赛，返回比赛是否已结束
func (m *MatchState) ApplyQuit() bool {
	if m.quitRequested {
		m.terminate(ReasonQuit)
	}
	return m.phase == PhaseTerminated
}

// CheckWinner 检查是否有一方达到获胜分数
// 先检查右侧、再检查左侧；分出胜负时结束比赛并返回胜方
func (m *MatchState) CheckWinner() (components.Side, bool) {
	if m.phase != PhaseRunning {
		return 0, false
	}
	if m.rightScore >= m.winningScore {
		m.terminate(ReasonRightWins)
		return components.SideRight, true
	}
	if m.leftScore >= m.winningScore {
		m.terminate(ReasonLeftWins)
		return components.SideLeft, true
	}
	return 0, false
}

// Reset 比分清零（拆除游戏时调用）
// 状态机保持不变：已结束的比赛不会因 Reset 重新开始
func (m *MatchState) Reset() {
	m.leftScore = 0
	m.rightScore = 0
}

func (m *MatchState) terminate(reason TerminationReason) {
	if m.phase == PhaseTerminated {
		return
	}
	m.phase = PhaseTerminated
	m.reason = reason
}

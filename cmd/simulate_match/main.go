// simulate_match 无窗口运行比赛，用真实的运动、输入、碰撞、计分系统
// 球拍由自动驾驶控制，用于检查规则和平衡性
//
// 用法:
//
//	go run ./cmd/simulate_match --matches 5 --autopilot left
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/ecs"
	"github.com/gonewx/pong/pkg/entities"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/logging"
	"github.com/gonewx/pong/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simLog = logging.For("SimulateMatch")

type simOptions struct {
	configPath string
	matches    int
	maxTicks   int
	autopilot  string
	quiet      bool
	verbose    bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := &simOptions{}

	cmd := &cobra.Command{
		Use:           "simulate_match",
		Short:         "Run headless Pong matches with autopiloted paddles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(opts.verbose, os.Stderr)
			if err := runSimulation(opts, cmd.OutOrStdout()); err != nil {
				logrus.WithError(err).Error("simulation failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "game config YAML (default: built-in)")
	flags.IntVar(&opts.matches, "matches", 1, "number of matches to play")
	flags.IntVar(&opts.maxTicks, "max-ticks", 200000, "abort a match after this many ticks")
	flags.StringVar(&opts.autopilot, "autopilot", "both", "autopiloted paddles: none, left, right, both")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print the summary")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// matchResult 一场模拟比赛的结果
type matchResult struct {
	reason game.TerminationReason
	left   int
	right  int
	ticks  int
	hits   int
}

func runSimulation(opts *simOptions, out io.Writer) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	sides, err := parseAutopilot(opts.autopilot)
	if err != nil {
		return err
	}
	if opts.matches <= 0 {
		return fmt.Errorf("--matches must be positive, got %d", opts.matches)
	}

	console := out
	if opts.quiet {
		console = io.Discard
	}

	var leftWins, rightWins, aborted int
	for i := 1; i <= opts.matches; i++ {
		fmt.Fprintf(console, "=== match %d ===\n", i)
		result, err := simulateMatch(cfg, sides, opts.maxTicks, console)
		if err != nil {
			return fmt.Errorf("match %d: %w", i, err)
		}

		switch result.reason {
		case game.ReasonLeftWins:
			leftWins++
		case game.ReasonRightWins:
			rightWins++
		default:
			aborted++
		}
		simLog.WithFields(logrus.Fields{
			"match":  i,
			"result": result.reason,
			"ticks":  result.ticks,
			"hits":   result.hits,
		}).Debug("match finished")
		fmt.Fprintf(out, "match %d: %s %d-%d after %d ticks (%d paddle hits)\n",
			i, result.reason, result.left, result.right, result.ticks, result.hits)
	}

	fmt.Fprintf(out, "left wins: %d, right wins: %d, aborted: %d\n", leftWins, rightWins, aborted)
	return nil
}

// loadConfig 路径为空时使用默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// simulateMatch 按游戏中的顺序逐帧驱动各系统，直到分出胜负或达到 maxTicks
func simulateMatch(cfg *config.GameConfig, sides map[components.Side]bool, maxTicks int, console io.Writer) (matchResult, error) {
	em := ecs.NewEntityManager()
	if _, err := entities.SpawnMatchEntities(em, cfg); err != nil {
		return matchResult{}, err
	}

	match := game.NewMatchState(cfg.Match.WinningScore, cfg.Match.ScoreSeparator)
	pilot := newAutopilot(em, sides)

	motion := systems.NewMotionSystem(em, cfg.Window.Width, cfg.Window.Height)
	input := systems.NewInputSystem(em, pilot)
	collision := systems.NewCollisionSystem(em)
	score := systems.NewScoreSystem(em, match, console)

	result := matchResult{reason: game.ReasonNone}
	for result.ticks = 1; result.ticks <= maxTicks; result.ticks++ {
		motion.Update()
		pilot.plan()
		input.Update()
		result.hits += len(collision.Update())
		score.Update()

		if winner, ok := match.CheckWinner(); ok {
			fmt.Fprintf(console, "%s Wins!\n", winner)
			break
		}
	}
	if result.ticks > maxTicks {
		result.ticks = maxTicks
	}

	result.reason = match.Reason()
	result.left = match.LeftScore()
	result.right = match.RightScore()
	return result, nil
}

func parseAutopilot(value string) (map[components.Side]bool, error) {
	switch value {
	case "none":
		return map[components.Side]bool{}, nil
	case "left":
		return map[components.Side]bool{components.SideLeft: true}, nil
	case "right":
		return map[components.Side]bool{components.SideRight: true}, nil
	case "both":
		return map[components.Side]bool{components.SideLeft: true, components.SideRight: true}, nil
	default:
		return nil, fmt.Errorf("unknown autopilot %q (want none, left, right or both)", value)
	}
}

// autopilot 让球拍中心追随球心，实现 systems.KeyReader
type autopilot struct {
	entityManager *ecs.EntityManager
	sides         map[components.Side]bool
	pressed       map[ebiten.Key]bool
}

func newAutopilot(em *ecs.EntityManager, sides map[components.Side]bool) *autopilot {
	return &autopilot{
		entityManager: em,
		sides:         sides,
		pressed:       make(map[ebiten.Key]bool),
	}
}

// IsKeyPressed 实现 systems.KeyReader
func (a *autopilot) IsKeyPressed(key ebiten.Key) bool {
	return a.pressed[key]
}

// plan 根据当前球的位置决定本帧按下的键
func (a *autopilot) plan() {
	clear(a.pressed)

	puckID, _, ok := ecs.First[*components.PuckComponent](a.entityManager)
	if !ok {
		return
	}
	puck, ok := ecs.GetComponent[*components.RectComponent](a.entityManager, puckID)
	if !ok {
		return
	}
	puckCenter := puck.Y + puck.H/2

	for _, id := range ecs.GetEntitiesWith3[*components.PaddleComponent, *components.ControlComponent, *components.RectComponent](a.entityManager) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](a.entityManager, id)
		if !a.sides[paddle.Side] {
			continue
		}
		control, _ := ecs.GetComponent[*components.ControlComponent](a.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](a.entityManager, id)
		if len(control.Schemes) == 0 {
			continue
		}

		center := rect.Y + rect.H/2
		scheme := control.Schemes[0]
		switch {
		case puckCenter > center+control.Speed/2:
			a.pressed[scheme.Down] = true
		case puckCenter < center-control.Speed/2:
			a.pressed[scheme.Up] = true
		}
	}
}

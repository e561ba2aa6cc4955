package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
)

func TestSimulateMatchWithoutPlayers(t *testing.T) {
	var console bytes.Buffer
	result, err := simulateMatch(config.Default(), map[components.Side]bool{}, 100000, &console)
	if err != nil {
		t.Fatalf("simulateMatch() error: %v", err)
	}

	if result.reason != game.ReasonLeftWins && result.reason != game.ReasonRightWins {
		t.Fatalf("reason = %v, want a winner", result.reason)
	}
	if result.left != 10 && result.right != 10 {
		t.Errorf("score = %d-%d, one side should have 10", result.left, result.right)
	}
	if !strings.HasSuffix(console.String(), "Wins!\n") {
		t.Errorf("console should end with the winner line, got %q", console.String())
	}
}

// TestSimulateMatchAutopilotHitsPuck 自动驾驶的球拍能接到球
func TestSimulateMatchAutopilotHitsPuck(t *testing.T) {
	sides, _ := parseAutopilot("both")
	result, err := simulateMatch(config.Default(), sides, 2000, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("simulateMatch() error: %v", err)
	}
	if result.hits == 0 {
		t.Error("autopiloted paddles never hit the puck")
	}
}

func TestSimulateMatchTickLimit(t *testing.T) {
	result, err := simulateMatch(config.Default(), map[components.Side]bool{}, 10, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("simulateMatch() error: %v", err)
	}
	if result.reason != game.ReasonNone || result.ticks != 10 {
		t.Errorf("result = %+v, want unfinished after 10 ticks", result)
	}
}

func TestParseAutopilot(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"none", 0, false},
		{"left", 1, false},
		{"right", 1, false},
		{"both", 2, false},
		{"everyone", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			sides, err := parseAutopilot(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAutopilot(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if len(sides) != tt.want {
				t.Errorf("len(sides) = %d, want %d", len(sides), tt.want)
			}
		})
	}
}

func TestRunSimulationSummary(t *testing.T) {
	var out bytes.Buffer
	opts := &simOptions{
		configPath: "../../data/config/pong.yaml",
		matches:    2,
		maxTicks:   100000,
		autopilot:  "none",
		quiet:      true,
	}
	if err := runSimulation(opts, &out); err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[2], "left wins: ") {
		t.Errorf("summary line = %q", lines[2])
	}
}

// TestDefaultOptionsUseBuiltinConfig 不带参数运行时使用内置配置，与工作目录无关
func TestDefaultOptionsUseBuiltinConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--quiet"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() with default options error: %v", err)
	}
	if !strings.Contains(out.String(), "left wins: ") {
		t.Errorf("summary missing from output:\n%s", out.String())
	}
}

func TestRunSimulationMissingConfig(t *testing.T) {
	opts := &simOptions{configPath: "missing.yaml", matches: 1, maxTicks: 10, autopilot: "none"}
	if err := runSimulation(opts, &bytes.Buffer{}); err == nil {
		t.Error("runSimulation() with a missing config should fail")
	}
}

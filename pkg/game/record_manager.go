package game

import (
	"fmt"

	"github.com/gonewx/pong/pkg/logging"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var recordLog = logging.For("RecordManager")

const (
	recordObject   = "records"
	recordProperty = "matches"
)

// MatchRecord 历史战绩
type MatchRecord struct {
	LeftWins  int `yaml:"leftWins"`
	RightWins int `yaml:"rightWins"`
	// Abandoned 未分出胜负就退出的局数
	Abandoned int `yaml:"abandoned"`

	// 最近一局的结果
	LastLeftScore  int    `yaml:"lastLeftScore"`
	LastRightScore int    `yaml:"lastRightScore"`
	LastResult     string `yaml:"lastResult"`
}

// Played 返回记录的总局数
func (r MatchRecord) Played() int {
	return r.LeftWins + r.RightWins + r.Abandoned
}

// RecordManager 战绩管理器
// 比赛本身只在内存中进行，结束后由 RecordManager 把结果写入 gdata
type RecordManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	record       MatchRecord
}

// NewRecordManager 创建战绩管理器并加载已有战绩
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{gdataManager: gdataManager}
	if err := rm.Load(); err != nil {
		recordLog.WithError(err).Warn("failed to load match records, starting fresh")
	}
	return rm
}

// Load 从 gdata 加载战绩
func (rm *RecordManager) Load() error {
	rm.record = MatchRecord{}
	if rm.gdataManager == nil || !rm.gdataManager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load match records: %w", err)
	}

	var loaded MatchRecord
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal match records: %w", err)
	}
	rm.record = loaded
	return nil
}

// Record 记录一局已结束的比赛
// 仍在进行中的比赛不会被记录
func (rm *RecordManager) Record(match *MatchState) {
	if match == nil || match.IsRunning() {
		return
	}

	switch match.Reason() {
	case ReasonLeftWins:
		rm.record.LeftWins++
	case ReasonRightWins:
		rm.record.RightWins++
	default:
		rm.record.Abandoned++
	}
	rm.record.LastLeftScore = match.LeftScore()
	rm.record.LastRightScore = match.RightScore()
	rm.record.LastResult = match.Reason().String()

	recordLog.WithFields(logrus.Fields{
		"result": rm.record.LastResult,
		"left":   rm.record.LastLeftScore,
		"right":  rm.record.LastRightScore,
	}).Info("match recorded")
}

// Save 保存战绩到 gdata，降级模式下不报错
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal match records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save match records: %w", err)
	}
	return nil
}

// GetRecord 返回当前战绩的副本
func (rm *RecordManager) GetRecord() MatchRecord {
	return rm.record
}

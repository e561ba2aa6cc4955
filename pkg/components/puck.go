package components

// PuckComponent 标记球实体
type PuckComponent struct {
	// SpawnX, SpawnY 得分后球重置到的位置（速度保持不变）
	SpawnX int
	SpawnY int
}

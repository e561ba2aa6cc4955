package components

// VelocityComponent 实体的速度（像素/帧）与边界策略
type VelocityComponent struct {
	XVel int
	YVel int

	// HasBounce 为 true 时碰到屏幕边界会反转速度分量（反弹），
	// 否则只撤销越界的那一步（停在边界内）
	HasBounce bool
}

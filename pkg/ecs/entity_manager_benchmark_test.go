package ecs

import (
	"reflect"
	"testing"
)

type benchmarkRect struct {
	X, Y, W, H int
}

type benchmarkVelocity struct {
	XVel, YVel int
}

// setupBenchmarkEntities 创建指定数量的实体，每隔一个实体带速度组件
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchmarkRect{X: i})
		if i%2 == 0 {
			em.AddComponent(id, &benchmarkVelocity{XVel: 1})
		}
	}
	return em
}

func BenchmarkGetEntitiesWith_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(reflect.TypeOf(&benchmarkRect{}), reflect.TypeOf(&benchmarkVelocity{}))
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := setupBenchmarkEntities(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchmarkRect, *benchmarkVelocity](em)
	}
}

func BenchmarkGetComponent_Generic(b *testing.B) {
	em := setupBenchmarkEntities(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchmarkRect](em, 1)
	}
}

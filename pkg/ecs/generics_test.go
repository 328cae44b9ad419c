package ecs

import (
	"reflect"
	"testing"
)

// TestGenericAPI 测试泛型 API 与反射 API 共用同一份存储
func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testNode{X: 1, Y: 2})

	pos, ok := GetComponent[*testNode](em, id)
	if !ok {
		t.Fatal("GetComponent should find *testNode")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Component data mismatch, got (%f, %f)", pos.X, pos.Y)
	}

	// 反射 API 能取到同一个组件
	if !em.HasComponent(id, reflect.TypeOf(&testNode{})) {
		t.Error("reflect API should see component added by generic API")
	}

	// 修改指针即修改存储中的组件
	pos.X = 42
	again, _ := GetComponent[*testNode](em, id)
	if again.X != 42 {
		t.Errorf("Expected shared pointer, got X=%f", again.X)
	}

	RemoveComponent[*testNode](em, id)
	if HasComponent[*testNode](em, id) {
		t.Error("Component should be removed")
	}
}

// TestGenericMissingEntity 测试不存在的实体返回零值
func TestGenericMissingEntity(t *testing.T) {
	em := NewEntityManager()
	comp, ok := GetComponent[*testNode](em, 999)
	if ok || comp != nil {
		t.Errorf("Expected (nil, false) for missing entity, got (%v, %v)", comp, ok)
	}
	// 向不存在的实体添加组件是 no-op
	AddComponent(em, 999, &testNode{})
	if em.Exists(999) {
		t.Error("AddComponent must not create entities")
	}
}

// TestGetEntitiesWithOrdered 测试查询结果按 ID 升序
func TestGetEntitiesWithOrdered(t *testing.T) {
	em := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testNode{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testCard{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testNode](em)
	if len(all) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("Entities not sorted: %v", all)
		}
	}

	both := GetEntitiesWith2[*testNode, *testCard](em)
	if len(both) != 10 {
		t.Errorf("Expected 10 entities with both components, got %d", len(both))
	}
	if len(both) > 0 && both[0] != ids[0] {
		t.Errorf("First match should be %d, got %d", ids[0], both[0])
	}
}

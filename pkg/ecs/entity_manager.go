package ecs

// EntityManager 管理所有实体的生命周期
//
// 两阶段约定：
//   - AddEntity 创建的实体进入待加入列表，在下一次 Update 之前对所有查询不可见；
//   - Destroy 只标记死亡，实体在下一次 Update 时才从存储中移除。
//
// 因此系统在同一个 tick 内遍历查询结果时，不会观察到并发的插入或删除。
// 查询返回的切片只读，且在下一次 Update 之前保持不变。
type EntityManager struct {
	// 槽位存储：索引 -> 实体记录（nil 表示空闲槽位）
	slots       []*Entity
	generations []uint32
	freeList    []uint32
	nextSerial  uint64

	// 待加入的实体（按创建顺序）
	pending []*Entity
	// 存活实体视图（插入顺序），每次 Update 重建
	live  []*Entity
	byTag [tagCount][]*Entity
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		slots:       make([]*Entity, 0, 256),
		generations: make([]uint32, 0, 256),
		freeList:    make([]uint32, 0, 64),
		nextSerial:  1, // 编号从1开始,0保留为无效编号
		pending:     make([]*Entity, 0, 32),
	}
}

// AddEntity 创建带标签的新实体并放入待加入列表
//
// 返回的句柄可立即用于挂载组件，但实体要到下一次 Update 后才会出现在查询中。
func (em *EntityManager) AddEntity(tag Tag) *Entity {
	idx := em.allocSlot()
	e := &Entity{
		id:     NewEntityID(idx, em.generations[idx]),
		serial: em.nextSerial,
		tag:    tag,
		alive:  true,
	}
	em.nextSerial++
	em.slots[idx] = e
	em.pending = append(em.pending, e)
	return e
}

func (em *EntityManager) allocSlot() uint32 {
	if n := len(em.freeList); n > 0 {
		idx := em.freeList[n-1]
		em.freeList = em.freeList[:n-1]
		return idx
	}
	idx := uint32(len(em.slots))
	em.slots = append(em.slots, nil)
	em.generations = append(em.generations, 1) // 代数从1开始,零句柄永远无效
	return idx
}

func (em *EntityManager) releaseSlot(e *Entity) {
	idx := e.id.Index()
	if em.slots[idx] != e {
		return
	}
	em.slots[idx] = nil
	em.generations[idx]++
	em.freeList = append(em.freeList, idx)
}

// Update 生命周期刷新，每个 tick 在任何系统运行之前调用一次
//
// 先把待加入实体按创建顺序追加到存活集合，再从存活集合和每个标签缓存中
// 移除所有已死亡的实体。
func (em *EntityManager) Update() {
	live := make([]*Entity, 0, len(em.live)+len(em.pending))
	var byTag [tagCount][]*Entity

	keep := func(e *Entity) {
		if !e.alive {
			em.releaseSlot(e)
			return
		}
		e.live = true
		live = append(live, e)
		byTag[e.tag] = append(byTag[e.tag], e)
	}

	for _, e := range em.live {
		keep(e)
	}
	for i, e := range em.pending {
		keep(e)
		em.pending[i] = nil
	}
	em.pending = em.pending[:0]

	em.live = live
	em.byTag = byTag
}

// GetEntities 返回所有存活实体（插入顺序）
func (em *EntityManager) GetEntities() []*Entity {
	return em.live
}

// GetEntitiesByTag 返回指定标签的存活实体（插入顺序）
// 标签下没有实体时返回空切片
func (em *EntityManager) GetEntitiesByTag(tag Tag) []*Entity {
	if tag >= tagCount {
		return nil
	}
	return em.byTag[tag]
}

// Get 通过句柄查找存活集合中的实体
// 句柄过期（槽位已被回收）或实体仍在待加入列表中时返回 false；
// 已标记死亡但尚未刷新的实体与查询视图一致，仍可查到
func (em *EntityManager) Get(id EntityID) (*Entity, bool) {
	e, ok := em.lookup(id)
	if !ok || !e.live {
		return nil, false
	}
	return e, true
}

// lookup 按句柄取槽位中的记录，包括待加入的实体
func (em *EntityManager) lookup(id EntityID) (*Entity, bool) {
	idx := id.Index()
	if int(idx) >= len(em.slots) {
		return nil, false
	}
	e := em.slots[idx]
	if e == nil || em.generations[idx] != id.Generation() {
		return nil, false
	}
	return e, true
}

// Destroy 标记实体死亡，移除推迟到下一次 Update；可重复调用
func (em *EntityManager) Destroy(e *Entity) {
	if e != nil {
		e.Destroy()
	}
}

// DestroyEntity 通过句柄标记实体死亡；待加入的实体同样生效，过期句柄被忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if e, ok := em.lookup(id); ok {
		e.Destroy()
	}
}

// Len 存活视图中的实体数量
func (em *EntityManager) Len() int {
	return len(em.live)
}

// PendingLen 待加入的实体数量
func (em *EntityManager) PendingLen() int {
	return len(em.pending)
}

// PendingByTag 返回待加入列表中指定标签的实体数量
func (em *EntityManager) PendingByTag(tag Tag) int {
	n := 0
	for _, e := range em.pending {
		if e.tag == tag {
			n++
		}
	}
	return n
}

// TotalCreated 累计创建过的实体数量
func (em *EntityManager) TotalCreated() uint64 {
	return em.nextSerial - 1
}

package ecs

import "github.com/decker502/shapewars/pkg/components"

// Tag 实体类别标签，创建后不可变，决定实体参与哪些系统查询
type Tag uint8

const (
	TagPlayer Tag = iota
	TagEnemy
	TagSmallEnemy
	TagBullet
	TagSpecial

	tagCount
)

var tagNames = [...]string{
	TagPlayer:     "player",
	TagEnemy:      "enemy",
	TagSmallEnemy: "small-enemy",
	TagBullet:     "bullet",
	TagSpecial:    "special",
}

// String 返回标签的文本形式（与配置、日志中的写法一致）
func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// Tags 返回所有标签，按声明顺序
func Tags() []Tag {
	return []Tag{TagPlayer, TagEnemy, TagSmallEnemy, TagBullet, TagSpecial}
}

// EntityID 实体句柄
// 低 32 位为槽位索引，高 32 位为代数；槽位被回收后代数递增，旧句柄随之失效。
type EntityID uint64

// NewEntityID 由槽位索引和代数组合句柄
func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// Entity 一个带标签的可选组件集合
//
// 组件字段为 nil 表示不具备该组件，对应系统会跳过该实体。
// *Entity 是非持有的句柄：记录始终归 EntityManager 所有。
type Entity struct {
	id     EntityID
	serial uint64
	tag    Tag
	alive  bool
	live   bool // 已被刷新进存活集合

	Transform *components.TransformComponent
	Shape     *components.ShapeComponent
	Collision *components.CollisionComponent
	Score     *components.ScoreComponent
	Input     *components.InputComponent
	Lifespan  *components.LifespanComponent
}

// ID 创建时单调分配的唯一编号，生命周期内稳定
func (e *Entity) ID() uint64 { return e.serial }

// Handle 返回可安全持有的代数句柄，用于 EntityManager.Get
func (e *Entity) Handle() EntityID { return e.id }

// Tag 返回实体标签
func (e *Entity) Tag() Tag { return e.tag }

// IsAlive 实体是否尚未被销毁
func (e *Entity) IsAlive() bool { return e.alive }

// Destroy 标记实体死亡；实际移除推迟到下一次 EntityManager.Update
// 可重复调用
func (e *Entity) Destroy() { e.alive = false }

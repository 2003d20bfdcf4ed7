package components

// ScoreComponent 击杀该实体可获得的分数
type ScoreComponent struct {
	Value int
}

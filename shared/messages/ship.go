package messages

// ShipUpdate is the local ship, sent every few simulation ticks.
type ShipUpdate struct {
	X, Y      float64
	Rotation  float64
	Health    float64
	MaxHealth float64
	ShipType  string
	Score     int
}

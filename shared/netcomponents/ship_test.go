package netcomponents

import "testing"

func TestLerpNetShip(t *testing.T) {
	from := NetShipData{X: 0, Y: 10, Rotation: 0, Score: 100}
	to := NetShipData{X: 10, Y: 20, Rotation: 1, Score: 300, ShipType: "heavy"}

	mid := LerpNetShip(from, to, 0.5)
	if mid.X != 5 || mid.Y != 15 || mid.Rotation != 0.5 {
		t.Fatalf("mid = %+v", mid)
	}
	if mid.Score != 300 || mid.ShipType != "heavy" {
		t.Fatalf("discrete fields should take the newer value, got %+v", mid)
	}
}

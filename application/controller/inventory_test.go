package controller

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAdjustQuantityIsExpressedAsIncrement(t *testing.T) {
	// two concurrent deltas must accumulate; an absolute write of a
	// precomputed quantity would let the second writer discard the first
	update := adjustQuantityUpdate(-3)

	inc, ok := update["$inc"].(bson.M)
	if !ok {
		t.Fatalf("expected $inc update, got %v", update)
	}
	if inc["quantity"] != int64(-3) {
		t.Errorf("quantity increment = %v, want -3", inc["quantity"])
	}
	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set of updatedAt, got %v", update)
	}
	if _, stamped := set["updatedAt"]; !stamped {
		t.Error("expected updatedAt in $set")
	}
	if _, absolute := set["quantity"]; absolute {
		t.Error("quantity must never be written as an absolute value")
	}
}

func TestAdjustQuantityFilterGuardsTheFloor(t *testing.T) {
	tests := []struct {
		name      string
		delta     int64
		wantGuard bool
		wantFloor int64
	}{
		{"decrement carries a floor guard", -3, true, 3},
		{"increment needs no guard", 5, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := adjustQuantityFilter("inv-1", tt.delta)
			if filter["_id"] != "inv-1" {
				t.Errorf("_id = %v, want inv-1", filter["_id"])
			}
			guard, ok := filter["quantity"].(map[string]any)
			if ok != tt.wantGuard {
				t.Fatalf("guard present = %v, want %v", ok, tt.wantGuard)
			}
			if tt.wantGuard && guard["$gte"] != tt.wantFloor {
				t.Errorf("$gte = %v, want %d", guard["$gte"], tt.wantFloor)
			}
		})
	}
}

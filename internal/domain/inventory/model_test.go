package inventory

import (
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		minQuantity int
		want        Status
	}{
		{name: "zero quantity", quantity: 0, minQuantity: 5, want: StatusOutOfStock},
		{name: "zero quantity and zero threshold", quantity: 0, minQuantity: 0, want: StatusOutOfStock},
		{name: "below threshold", quantity: 3, minQuantity: 10, want: StatusLowStock},
		{name: "exactly at threshold", quantity: 10, minQuantity: 10, want: StatusLowStock},
		{name: "one above threshold", quantity: 11, minQuantity: 10, want: StatusInStock},
		{name: "well stocked", quantity: 150, minQuantity: 50, want: StatusInStock},
		{name: "positive quantity with zero threshold", quantity: 1, minQuantity: 0, want: StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.quantity, tt.minQuantity)
			if got != tt.want {
				t.Errorf("ClassifyStatus(%d, %d) = %s, want %s",
					tt.quantity, tt.minQuantity, got, tt.want)
			}
		})
	}
}

func TestMovementSignedDelta(t *testing.T) {
	in := Movement{Type: MovementInbound, Quantity: 40}
	if got := in.SignedDelta(); got != 40 {
		t.Errorf("inbound delta = %d, want 40", got)
	}

	out := Movement{Type: MovementOutbound, Quantity: 15}
	if got := out.SignedDelta(); got != -15 {
		t.Errorf("outbound delta = %d, want -15", got)
	}
}

func TestMovementTypeValid(t *testing.T) {
	if !MovementInbound.Valid() || !MovementOutbound.Valid() {
		t.Error("known movement types should be valid")
	}
	if MovementType("adjust").Valid() {
		t.Error("unknown movement type should be invalid")
	}
}

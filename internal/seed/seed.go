// Package seed loads the demo dataset into a fresh engine at startup.
// Everything flows through the engine's own operations so ids, timestamps
// and statuses come from the classifier, never from hardcoded values.
package seed

import (
	"context"
	"fmt"

	"smartinventory/internal/core/id"
	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/auth"
	"smartinventory/internal/domain/inventory"
	"smartinventory/pkg/logger"
)

type seedItem struct {
	input inventory.NewItemInput
	key   string // local key movements reference
}

type seedMovement struct {
	itemKey  string
	typ      inventory.MovementType
	quantity int
	location string
	notes    string
	operator string
}

// Items start at their pre-movement quantities; replaying the movement
// history below lands each item on its demo quantity.
var seedItems = []seedItem{
	{key: "isb", input: inventory.NewItemInput{
		Name: "Industrial Steel Brackets", SKU: "ISB-001",
		Quantity: 100, MinQuantity: 50,
		Location: "A1-B3", Zone: "Zone A", Category: "Hardware",
		Price: types.MustMoney("25.99"),
	}},
	{key: "led", input: inventory.NewItemInput{
		Name: "Premium LED Light Strips", SKU: "LED-002",
		Quantity: 40, MinQuantity: 30,
		Location: "B2-C1", Zone: "Zone B", Category: "Electronics",
		Price: types.MustMoney("89.50"),
	}},
	{key: "hpa", input: inventory.NewItemInput{
		Name: "Hydraulic Pump Assembly", SKU: "HPA-003",
		Quantity: 5, MinQuantity: 5,
		Location: "C1-A2", Zone: "Zone C", Category: "Machinery",
		Price: types.MustMoney("450.00"),
	}},
	{key: "sh", input: inventory.NewItemInput{
		Name: "Safety Helmets - White", SKU: "SH-004",
		Quantity: 100, MinQuantity: 20,
		Location: "D1-A1", Zone: "Zone D", Category: "Safety",
		Price: types.MustMoney("18.75"),
	}},
	{key: "pbb", input: inventory.NewItemInput{
		Name: "Precision Ball Bearings", SKU: "PBB-005",
		Quantity: 75, MinQuantity: 100,
		Location: "A2-C3", Zone: "Zone A", Category: "Components",
		Price: types.MustMoney("12.30"),
	}},
}

// Movement history, oldest first; recorded through the engine so the
// ledger ends up newest-first with quantities applied.
var seedMovements = []seedMovement{
	{itemKey: "hpa", typ: inventory.MovementOutbound, quantity: 5,
		location: "C1-A2", notes: "Emergency maintenance order", operator: "Sarah Johnson"},
	{itemKey: "sh", typ: inventory.MovementInbound, quantity: 100,
		location: "D1-A1", notes: "Safety equipment restocking", operator: "David Wilson"},
	{itemKey: "led", typ: inventory.MovementOutbound, quantity: 15,
		location: "B2-C1", notes: "Order #ORD-2025-001", operator: "Maria Garcia"},
	{itemKey: "isb", typ: inventory.MovementInbound, quantity: 50,
		location: "A1-B3", notes: "Weekly restock from supplier", operator: "John Smith"},
}

// LoadInventory fills an empty engine with the demo dataset.
func LoadInventory(ctx context.Context, engine *inventory.Service) error {
	ids := make(map[string]id.ID, len(seedItems))

	for _, s := range seedItems {
		item, err := engine.AddItem(ctx, s.input)
		if err != nil {
			return fmt.Errorf("seed item %s: %w", s.input.SKU, err)
		}
		ids[s.key] = item.ID
	}

	for _, m := range seedMovements {
		_, err := engine.RecordMovement(ctx, inventory.NewMovementInput{
			ItemID:   ids[m.itemKey],
			Type:     m.typ,
			Quantity: m.quantity,
			Location: m.location,
			Notes:    m.notes,
			Operator: m.operator,
		})
		if err != nil {
			return fmt.Errorf("seed movement for %s: %w", m.itemKey, err)
		}
	}

	logger.Info(ctx, "demo inventory loaded",
		"items", len(seedItems),
		"movements", len(seedMovements),
	)
	return nil
}

// LoadUsers seeds the demo user directory.
func LoadUsers(ctx context.Context, svc *auth.Service) error {
	users := []struct {
		email, password, name, role string
	}{
		{"admin@smartinventory.com", "admin123", "John Admin", auth.RoleAdmin},
		{"manager@smartinventory.com", "manager123", "Sarah Manager", auth.RoleManager},
		{"operator@smartinventory.com", "operator123", "Mike Operator", auth.RoleOperator},
	}

	for _, u := range users {
		if err := svc.SeedUser(u.email, u.password, u.name, u.role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	logger.Info(ctx, "demo users loaded", "count", len(users))
	return nil
}

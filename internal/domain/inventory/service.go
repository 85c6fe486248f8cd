package inventory

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"smartinventory/internal/core/apperror"
	"smartinventory/internal/core/id"
	"smartinventory/internal/core/types"
	"smartinventory/pkg/logger"
)

var tracer = otel.Tracer("smartinventory/inventory")

// Service owns both the item collection and the movement ledger.
// Keeping them behind one owner lets RecordMovement apply the ledger
// append and the item quantity update atomically; callers never get two
// half-applied collections.
//
// All mutations are serialized by a single mutex so the engine can sit
// behind a multi-request HTTP server. Reads return snapshots.
type Service struct {
	mu        sync.Mutex
	items     []*Item
	index     map[id.ID]int // item id -> position in items
	movements []*Movement   // newest-first
	version   uint64

	now func() time.Time
}

// NewService creates an empty inventory engine.
func NewService() *Service {
	return &Service{
		index: make(map[id.ID]int),
		now:   time.Now,
	}
}

// NewItemInput holds the caller-supplied attributes of a new item.
// ID, LastUpdated and Status are generated by the engine.
type NewItemInput struct {
	Name        string
	SKU         string
	Quantity    int
	MinQuantity int
	Location    string
	Zone        string
	Category    string
	Price       types.Money
}

// ItemUpdate is a partial set of field overrides. Nil fields are left as-is.
type ItemUpdate struct {
	Name        *string
	SKU         *string
	Quantity    *int
	MinQuantity *int
	Location    *string
	Zone        *string
	Category    *string
	Price       *types.Money
}

// NewMovementInput holds the caller-supplied attributes of a new movement.
// ID and Timestamp are generated by the engine. ItemName and SKU are
// filled from the referenced item when it exists and they are empty.
type NewMovementInput struct {
	ItemID   id.ID
	ItemName string
	SKU      string
	Type     MovementType
	Quantity int
	Location string
	Notes    string
	Operator string
}

// AddItem creates a new item. Status is computed by the classifier, not
// hardcoded. Duplicate SKUs are accepted.
func (s *Service) AddItem(ctx context.Context, in NewItemInput) (Item, error) {
	ctx, span := tracer.Start(ctx, "inventory.add_item")
	defer span.End()

	if err := validateNewItem(in); err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := &Item{
		ID:          id.New(),
		Name:        in.Name,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Location:    in.Location,
		Zone:        in.Zone,
		Category:    in.Category,
		Price:       in.Price,
		LastUpdated: s.now(),
	}
	item.Status = ClassifyStatus(item.Quantity, item.MinQuantity)

	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
	s.version++

	span.SetAttributes(attribute.String("item.id", item.ID.String()))
	logger.Info(ctx, "item added",
		"item_id", item.ID,
		"sku", item.SKU,
		"quantity", item.Quantity,
		"status", item.Status,
	)

	return *item, nil
}

// UpdateItem merges the partial overrides onto an existing item, refreshes
// LastUpdated, reclassifies status and keeps the item's position.
// Returns NOT_FOUND for an unknown id.
func (s *Service) UpdateItem(ctx context.Context, itemID id.ID, upd ItemUpdate) (Item, error) {
	ctx, span := tracer.Start(ctx, "inventory.update_item",
		trace.WithAttributes(attribute.String("item.id", itemID.String())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[itemID]
	if !ok {
		return Item{}, apperror.NewNotFound("item", itemID.String())
	}

	// Validate every override before touching the stored item, so a
	// rejected update leaves no partially merged state behind.
	if err := validateItemUpdate(upd); err != nil {
		return Item{}, err
	}

	item := s.items[pos]

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.SKU != nil {
		item.SKU = *upd.SKU
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.MinQuantity != nil {
		item.MinQuantity = *upd.MinQuantity
	}
	if upd.Location != nil {
		item.Location = *upd.Location
	}
	if upd.Zone != nil {
		item.Zone = *upd.Zone
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}

	item.LastUpdated = s.now()
	item.Status = ClassifyStatus(item.Quantity, item.MinQuantity)
	s.version++

	logger.Info(ctx, "item updated",
		"item_id", item.ID,
		"quantity", item.Quantity,
		"status", item.Status,
	)

	return *item, nil
}

// RecordMovement appends a movement to the ledger (newest-first) and
// applies its signed quantity delta to the referenced item in the same
// critical section. The item quantity is clamped at zero: an outbound
// movement larger than the on-hand quantity drains the item rather than
// driving it negative. A movement referencing an unknown item is still
// recorded; the delta is silently skipped.
func (s *Service) RecordMovement(ctx context.Context, in NewMovementInput) (Movement, error) {
	ctx, span := tracer.Start(ctx, "inventory.record_movement",
		trace.WithAttributes(
			attribute.String("movement.type", string(in.Type)),
			attribute.Int("movement.quantity", in.Quantity),
		))
	defer span.End()

	if !in.Type.Valid() {
		return Movement{}, apperror.NewValidation("type must be inbound or outbound").
			WithDetail("type", string(in.Type))
	}
	if in.Quantity <= 0 {
		return Movement{}, apperror.NewValidation("quantity must be a positive magnitude").
			WithDetail("quantity", in.Quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mv := &Movement{
		ID:        id.New(),
		ItemID:    in.ItemID,
		ItemName:  in.ItemName,
		SKU:       in.SKU,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Location:  in.Location,
		Timestamp: s.now(),
		Notes:     in.Notes,
		Operator:  in.Operator,
	}

	if pos, ok := s.index[in.ItemID]; ok {
		item := s.items[pos]
		if mv.ItemName == "" {
			mv.ItemName = item.Name
		}
		if mv.SKU == "" {
			mv.SKU = item.SKU
		}
	}

	// Prepend: the ledger's canonical external order is newest-first.
	s.movements = append([]*Movement{mv}, s.movements...)

	s.applyMovementDelta(ctx, mv.ItemID, mv.SignedDelta())
	s.version++

	logger.Info(ctx, "movement recorded",
		"movement_id", mv.ID,
		"item_id", mv.ItemID,
		"type", mv.Type,
		"quantity", mv.Quantity,
		"operator", mv.Operator,
	)

	return *mv, nil
}

// applyMovementDelta is the single path through which movements change
// item quantities. Caller must hold s.mu. Unknown ids are a no-op.
func (s *Service) applyMovementDelta(ctx context.Context, itemID id.ID, delta int) {
	pos, ok := s.index[itemID]
	if !ok {
		logger.Warn(ctx, "movement references unknown item, delta skipped",
			"item_id", itemID,
			"delta", delta,
		)
		return
	}

	item := s.items[pos]
	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		newQuantity = 0
	}
	item.Quantity = newQuantity
	item.LastUpdated = s.now()
	item.Status = ClassifyStatus(item.Quantity, item.MinQuantity)
}

// Item returns a single item by id.
func (s *Service) Item(itemID id.ID) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[itemID]
	if !ok {
		return Item{}, apperror.NewNotFound("item", itemID.String())
	}
	return *s.items[pos], nil
}

// Items returns a snapshot of all items in insertion order.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// Movements returns a snapshot of the ledger, newest-first.
func (s *Service) Movements() []Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movementsLocked()
}

// Snapshot returns consistent copies of both collections plus the version
// they correspond to. Aggregations read through here so they never observe
// a half-applied item/ledger pair.
func (s *Service) Snapshot() ([]Item, []Movement, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked(), s.movementsLocked(), s.version
}

// Version returns the mutation counter. It is bumped by every successful
// mutation and keys memoization of derived aggregates.
func (s *Service) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Service) itemsLocked() []Item {
	out := make([]Item, len(s.items))
	for i, item := range s.items {
		out[i] = *item
	}
	return out
}

func (s *Service) movementsLocked() []Movement {
	out := make([]Movement, len(s.movements))
	for i, mv := range s.movements {
		out[i] = *mv
	}
	return out
}

func validateItemUpdate(upd ItemUpdate) error {
	if upd.Quantity != nil && *upd.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantity")
	}
	if upd.MinQuantity != nil && *upd.MinQuantity < 0 {
		return apperror.NewValidation("minQuantity must not be negative").
			WithDetail("field", "minQuantity")
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price")
	}
	return nil
}

func validateNewItem(in NewItemInput) error {
	if in.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if in.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantity")
	}
	if in.MinQuantity < 0 {
		return apperror.NewValidation("minQuantity must not be negative").
			WithDetail("field", "minQuantity")
	}
	if in.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price")
	}
	return nil
}

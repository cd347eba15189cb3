package orderstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// Store reads and writes the order collection of a business under
// business.OrdersKey. Records written before collections were scoped live under
// business.LegacyOrdersKey and are adopted by the default business only.
type Store struct {
	kv              ports.KeyValueStore
	defaultBusiness business.ID
	logger          *slog.Logger

	mu    sync.Mutex
	locks map[business.ID]*sync.Mutex
}

func NewStore(kv ports.KeyValueStore, defaultBusiness business.ID, logger *slog.Logger) *Store {
	return &Store{
		kv:              kv,
		defaultBusiness: defaultBusiness,
		logger:          logger.With("component", "orderstore"),
		locks:           make(map[business.ID]*sync.Mutex),
	}
}

// snapshot is one read of a collection. Records that could not be restored are kept
// verbatim so that writing the collection back does not erase them.
type snapshot struct {
	orders     []*order.Order
	unreadable []json.RawMessage
	// reserved is the highest number held by an unreadable record.
	reserved int
}

// Load returns the orders of businessID. A missing collection is empty. Unreadable
// documents and records are logged and skipped; only storage failures are returned.
func (s *Store) Load(ctx context.Context, businessID business.ID) ([]*order.Order, error) {
	snap, err := s.read(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return snap.orders, nil
}

// Save replaces the readable orders of businessID. Records Load skipped are written
// back untouched after them.
func (s *Store) Save(ctx context.Context, businessID business.ID, orders []*order.Order) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	data, ok, err := s.kv.Get(ctx, business.OrdersKey(businessID))
	if err != nil {
		return fmt.Errorf("read orders of %s: %w", businessID, err)
	}
	var unreadable []json.RawMessage
	if ok {
		unreadable = s.decode(businessID, data).unreadable
	}
	return s.write(ctx, businessID, orders, unreadable)
}

func (s *Store) read(ctx context.Context, businessID business.ID) (snapshot, error) {
	if err := businessID.Validate(); err != nil {
		return snapshot{}, err
	}

	data, ok, err := s.kv.Get(ctx, business.OrdersKey(businessID))
	if err != nil {
		return snapshot{}, fmt.Errorf("read orders of %s: %w", businessID, err)
	}
	if !ok {
		if data, ok, err = s.migrateLegacy(ctx, businessID); err != nil {
			return snapshot{}, err
		}
		if !ok {
			return snapshot{orders: []*order.Order{}}, nil
		}
	}

	return s.decode(businessID, data), nil
}

func (s *Store) write(ctx context.Context, businessID business.ID, orders []*order.Order, unreadable []json.RawMessage) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	records := make([]any, 0, len(orders)+len(unreadable))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		records = append(records, fromDomain(o))
	}
	for _, raw := range unreadable {
		records = append(records, raw)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode orders of %s: %w", businessID, err)
	}
	if err := s.kv.Set(ctx, business.OrdersKey(businessID), data); err != nil {
		return fmt.Errorf("write orders of %s: %w", businessID, err)
	}
	return nil
}

// Clear deletes the whole collection of businessID.
func (s *Store) Clear(ctx context.Context, businessID business.ID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, business.OrdersKey(businessID)); err != nil {
		return fmt.Errorf("clear orders of %s: %w", businessID, err)
	}
	return nil
}

// migrateLegacy copies the unscoped legacy collection into the default business and
// deletes it afterwards. Other businesses never see legacy data.
func (s *Store) migrateLegacy(ctx context.Context, businessID business.ID) ([]byte, bool, error) {
	if s.defaultBusiness.IsZero() || businessID != s.defaultBusiness {
		return nil, false, nil
	}

	data, ok, err := s.kv.Get(ctx, business.LegacyOrdersKey)
	if err != nil {
		return nil, false, fmt.Errorf("read legacy orders: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	if err := s.kv.Set(ctx, business.OrdersKey(businessID), data); err != nil {
		return nil, false, fmt.Errorf("copy legacy orders to %s: %w", businessID, err)
	}
	if err := s.kv.Delete(ctx, business.LegacyOrdersKey); err != nil {
		return nil, false, fmt.Errorf("delete legacy orders: %w", err)
	}

	s.logger.Info("migrated legacy orders", "business", businessID, "bytes", len(data))
	return data, true, nil
}

func (s *Store) decode(businessID business.ID, data []byte) snapshot {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("stored orders are unreadable, starting empty", "business", businessID, "error", err)
		return snapshot{orders: []*order.Order{}}
	}

	snap := snapshot{orders: make([]*order.Order, 0, len(records))}
	for _, raw := range records {
		var dto OrderDTO
		err := json.Unmarshal(raw, &dto)
		if err == nil {
			var o *order.Order
			if o, err = toDomain(dto); err == nil {
				snap.orders = append(snap.orders, o)
				continue
			}
		}

		s.logger.Warn("keeping unreadable order aside", "business", businessID, "order", dto.ID, "error", err)
		snap.unreadable = append(snap.unreadable, raw)
		snap.reserved = max(snap.reserved, recordNumber(raw))
	}
	return snap
}

// recordNumber reads the number of a record that does not restore, 0 when even that
// fails.
func recordNumber(raw json.RawMessage) int {
	var header struct {
		Number int `json:"number"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return 0
	}
	return header.Number
}

// lock serializes units of work of the same business within the process.
func (s *Store) lock(businessID business.ID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[businessID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[businessID] = l
	}
	return l
}

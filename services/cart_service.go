package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/redis/go-redis/v9"
)

// ════════════════════════════════════════════════════════════
// Path: services/cart_service.go
// Durable identifier→quantity cart store with change notification
// ════════════════════════════════════════════════════════════

// DefaultCartKey matches the storage key the storefront has used since v1.
const DefaultCartKey = "cart:v1"

// CartBackend persists the serialized entry map under one fixed key.
// Load returns (nil, nil) when nothing is stored yet.
type CartBackend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// ── Redis backend ────────────────────────────────────────────

type RedisCartBackend struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartBackend(client *redis.Client, ttl time.Duration) *RedisCartBackend {
	return &RedisCartBackend{Client: client, TTL: ttl}
}

func (b *RedisCartBackend) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := b.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (b *RedisCartBackend) Save(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.Client.Set(ctx, key, data, b.TTL).Err()
}

// ── File backend ─────────────────────────────────────────────
// One JSON file per cart key, mirroring the browser's single-key storage.

type FileCartBackend struct {
	Dir string
}

func NewFileCartBackend(dir string) *FileCartBackend {
	return &FileCartBackend{Dir: dir}
}

var cartKeyReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

func (b *FileCartBackend) path(key string) string {
	return filepath.Join(b.Dir, cartKeyReplacer.Replace(key)+".json")
}

func (b *FileCartBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (b *FileCartBackend) Save(key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(b.path(key), data, 0o644)
}

// ── In-memory backend ────────────────────────────────────────
// Fallback when neither Redis nor a data directory is configured.

type MemoryCartBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryCartBackend() *MemoryCartBackend {
	return &MemoryCartBackend{data: make(map[string][]byte)}
}

func (b *MemoryCartBackend) Load(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[key], nil
}

func (b *MemoryCartBackend) Save(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	b.data[key] = cp
	return nil
}

// ── Backend wiring ───────────────────────────────────────────
// Chosen once at startup, same pattern as the other service singletons.

var defaultCartBackend CartBackend = NewMemoryCartBackend()

// InitCartBackend sets the backend used for request-scoped cart stores.
func InitCartBackend(b CartBackend) {
	if b != nil {
		defaultCartBackend = b
	}
}

// CartStoreFor opens the store for one customer's cart. An empty cart id
// maps to the storefront's original single-cart key.
func CartStoreFor(cartID string) *CartStore {
	key := DefaultCartKey
	if cartID != "" {
		key += ":" + cartID
	}
	return NewCartStore(defaultCartBackend, key)
}

// ── Cart store ───────────────────────────────────────────────

// CartStore tracks per-identifier quantities and persists the full entry
// map on every mutation. Every successful mutation notifies all registered
// listeners synchronously before the mutating call returns.
//
// Different store instances sharing one backend key are last-write-wins;
// no cross-instance locking is attempted. That matches the storage
// contract and is an accepted limitation, not a gap.
type CartStore struct {
	backend CartBackend
	key     string

	mu        sync.Mutex
	entries   models.CartEntries
	listeners []func(models.CartChange)
}

// NewCartStore loads persisted state for the key. Absent or corrupt state
// initializes an empty cart; loading never fails.
func NewCartStore(backend CartBackend, key string) *CartStore {
	if key == "" {
		key = DefaultCartKey
	}
	s := &CartStore{backend: backend, key: key}
	data, err := backend.Load(key)
	if err != nil {
		log.Printf("⚠️ Failed to load cart %q, starting empty: %v", key, err)
		return s
	}
	if len(data) == 0 {
		return s
	}
	var entries models.CartEntries
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Corrupt cart state for %q, starting empty: %v", key, err)
		return s
	}
	s.entries = entries
	return s
}

// Subscribe registers a listener for cart changes. Listeners are invoked
// synchronously, in registration order, on every mutation.
func (s *CartStore) Subscribe(fn func(models.CartChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add applies a signed quantity delta to an identifier and returns the new
// quantity, floored at 0. A resulting quantity of 0 removes the entry.
func (s *CartStore) Add(id string, delta int) int {
	s.mu.Lock()
	next := s.entries.Quantity(id) + delta
	if next < 0 {
		next = 0
	}
	s.entries = s.entries.Set(id, next)
	s.persistLocked()
	change := models.CartChange{
		Identifier:    id,
		Quantity:      next,
		TotalQuantity: s.entries.TotalQuantity(),
	}
	listeners := make([]func(models.CartChange), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
	return next
}

// AddWithConstraints applies the product's ordering constraints before
// delegating to Add. Positive deltas are clamped to the max-order and
// stock quantities; the minimum order quantity is raised only on the first
// add (constraints apply at the moment of the mutation, never
// retroactively). Decreases are never blocked.
func (s *CartStore) AddWithConstraints(p *models.Product, id string, delta int) (int, error) {
	cur := s.Quantity(id)
	if delta > 0 {
		if p.IsOutOfStock() {
			return cur, errors.New("المنتج غير متوفر حالياً")
		}
		target := cur + delta
		if limit := p.MaxOrderQuantity(); limit > 0 && target > limit {
			target = limit
		}
		if p.StockQuantity != nil && target > *p.StockQuantity {
			target = *p.StockQuantity
		}
		if cur == 0 && p.MinOrderQty > 1 && target < p.MinOrderQty {
			target = p.MinOrderQty
		}
		delta = target - cur
	} else if delta < 0 {
		target := cur + delta
		if target < 0 {
			target = 0
		}
		delta = target - cur
	}
	if delta == 0 {
		return cur, nil
	}
	return s.Add(id, delta), nil
}

// Quantity returns the stored quantity for an identifier.
func (s *CartStore) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Quantity(id)
}

// TotalQuantity returns the sum of all quantities in the cart.
func (s *CartStore) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.TotalQuantity()
}

// Entries returns a copy of the cart in insertion order.
func (s *CartStore) Entries() models.CartEntries {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(models.CartEntries, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes every entry, persisting and notifying per entry removed.
func (s *CartStore) Clear() {
	for _, entry := range s.Entries() {
		s.Add(entry.ID, -entry.Qty)
	}
}

// persistLocked writes the full map. A storage failure keeps the in-memory
// state authoritative for this instance.
func (s *CartStore) persistLocked() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("❌ Failed to serialize cart %q: %v", s.key, err)
		return
	}
	if err := s.backend.Save(s.key, data); err != nil {
		log.Printf("❌ Failed to persist cart %q: %v", s.key, err)
	}
}

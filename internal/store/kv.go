package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ilanjuiran/RestaurantWebsite/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore persists snapshots as rows of the kv_entries table.
type KVStore struct {
	db *gorm.DB
}

func NewKVStore(db *gorm.DB) *KVStore { return &KVStore{db: db} }

func (s *KVStore) get(key string) (string, bool, error) {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *KVStore) put(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) LoadCart() ([]models.CartLine, bool, error) {
	raw, found, err := s.get(KeyCart)
	if err != nil || !found {
		return nil, found, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, true, fmt.Errorf("decode cart: %w", err)
	}
	return lines, true, nil
}

func (s *KVStore) SaveCart(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.put(KeyCart, string(raw))
}

func (s *KVStore) LoadLedger() ([]models.Invoice, bool, error) {
	raw, found, err := s.get(KeyLedger)
	if err != nil || !found {
		return nil, found, err
	}
	var invoices []models.Invoice
	if err := json.Unmarshal([]byte(raw), &invoices); err != nil {
		return nil, true, fmt.Errorf("decode ledger: %w", err)
	}
	return invoices, true, nil
}

func (s *KVStore) SaveLedger(invoices []models.Invoice) error {
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	raw, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return s.put(KeyLedger, string(raw))
}

func (s *KVStore) LoadCounter() (int64, bool, error) {
	raw, found, err := s.get(KeyCounter)
	if err != nil || !found {
		return 0, found, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("decode counter: %w", err)
	}
	return n, true, nil
}

func (s *KVStore) SaveCounter(n int64) error {
	return s.put(KeyCounter, strconv.FormatInt(n, 10))
}

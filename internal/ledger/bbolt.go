package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
	"pkg.jsn.cam/likegen/pkg/likegen"
)

var runsBucket = []byte("runs")

// BboltLedger stores reports as JSON in a bbolt database, keyed by run ID
type BboltLedger struct {
	db *bolt.DB
}

// Open opens or creates the ledger database at path
func Open(path string) (*BboltLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	log.Printf("[LEDGER] Bbolt ledger initialized at %s", path)
	return &BboltLedger{db: db}, nil
}

// Record stores a report
func (l *BboltLedger) Record(report *likegen.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(report.RunID), data)
	})
}

// Runs returns all reports, newest first
func (l *BboltLedger) Runs() ([]*likegen.Report, error) {
	var runs []*likegen.Report

	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var report likegen.Report
			if err := json.Unmarshal(v, &report); err != nil {
				log.Printf("[LEDGER] Warning: Failed to decode run %s: %v", k, err)
				return nil // Skip corrupted entries
			}
			runs = append(runs, &report)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(runs)
	return runs, nil
}

// Get returns one report
func (l *BboltLedger) Get(runID string) (*likegen.Report, error) {
	var report *likegen.Report

	err := l.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(runID))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		// v is only valid inside the transaction; Unmarshal copies it
		report = &likegen.Report{}
		if err := json.Unmarshal(v, report); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	})

	return report, err
}

// Close closes the database
func (l *BboltLedger) Close() error {
	return l.db.Close()
}

// Package padreg implements the pad registry: an embedded-KV catalog of
// pad metadata (usage snapshots, rotation history), keyed by the 16-byte
// pad id from the pad-file header. The registry never stores pad bytes or
// key material — only operational metadata about pads whose bytes live in
// the padfile format elsewhere on disk.
package padreg

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"golang.org/x/sync/errgroup"
)

// ErrRecordNotFound is returned when no record exists for a given pad id.
var ErrRecordNotFound = errors.New("padreg: record not found")

// Record is one pad's catalog entry.
type Record struct {
	ID            [16]byte
	Total         uint64
	Used          uint64
	RotationCount uint32
	CreatedUnix   int64
	RotatedUnix   int64
}

// Registry is a badger-backed catalog of Records.
type Registry struct {
	db *badger.DB
}

// Open opens (creating if necessary) a registry rooted at dir.
func Open(dir string) (*Registry, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Registry{db: db}, nil
}

// Close releases the underlying badger database.
func (r *Registry) Close() error {
	return r.db.Close()
}

func key(id [16]byte) []byte {
	return []byte("pad:" + hex.EncodeToString(id[:]))
}

func encode(rec Record) []byte {
	buf := make([]byte, 16+8+8+4+8+8)
	copy(buf[:16], rec.ID[:])
	binary.LittleEndian.PutUint64(buf[16:24], rec.Total)
	binary.LittleEndian.PutUint64(buf[24:32], rec.Used)
	binary.LittleEndian.PutUint32(buf[32:36], rec.RotationCount)
	binary.LittleEndian.PutUint64(buf[36:44], uint64(rec.CreatedUnix))
	binary.LittleEndian.PutUint64(buf[44:52], uint64(rec.RotatedUnix))
	return buf
}

func decode(buf []byte) (Record, error) {
	if len(buf) != 52 {
		return Record{}, ErrRecordNotFound
	}
	var rec Record
	copy(rec.ID[:], buf[:16])
	rec.Total = binary.LittleEndian.Uint64(buf[16:24])
	rec.Used = binary.LittleEndian.Uint64(buf[24:32])
	rec.RotationCount = binary.LittleEndian.Uint32(buf[32:36])
	rec.CreatedUnix = int64(binary.LittleEndian.Uint64(buf[36:44]))
	rec.RotatedUnix = int64(binary.LittleEndian.Uint64(buf[44:52]))
	return rec, nil
}

// Put creates or overwrites the record for rec.ID.
func (r *Registry) Put(rec Record) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.ID), encode(rec))
	})
}

// Get returns the record for id, or ErrRecordNotFound.
func (r *Registry) Get(id [16]byte) (Record, error) {
	var rec Record
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrRecordNotFound
			}
			return err
		}
		return item.Value(func(v []byte) error {
			var decErr error
			rec, decErr = decode(v)
			return decErr
		})
	})
	return rec, err
}

// RecordRotation updates an existing record's usage snapshot and bumps its
// rotation count, stamping RotatedUnix with now.Unix() (now is supplied by
// the caller, since this package does not call time.Now() itself to stay
// testable without wall-clock dependence).
func (r *Registry) RecordRotation(id [16]byte, newTotal uint64, now time.Time) error {
	rec, err := r.Get(id)
	if err != nil {
		return err
	}
	rec.Total = newTotal
	rec.Used = 0
	rec.RotationCount++
	rec.RotatedUnix = now.Unix()
	return r.Put(rec)
}

// PutMany writes several records concurrently, one goroutine per record in
// an errgroup with no concurrency limit, for bulk registry population (e.g.
// importing many pads at once).
func (r *Registry) PutMany(recs []Record) error {
	var g errgroup.Group
	for _, rec := range recs {
		rec := rec
		g.Go(func() error {
			return r.Put(rec)
		})
	}
	return g.Wait()
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lojasmm/wabridge/internal/flow"
)

var (
	botsBucket    = []byte("bots")
	repliesBucket = []byte("replies")
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// Reply is the latest answer a phone number sent, with its guessed value.
type Reply struct {
	Phone      string    `json:"phone"`
	MessageID  string    `json:"messageId"`
	Text       string    `json:"text"`
	ButtonID   string    `json:"buttonId,omitempty"`
	Value      any       `json:"value"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type Store interface {
	CreateBot(b flow.Bot) error
	GetBot(id string) (*flow.Bot, error)
	ListBots(workspaceID string, ids []string) ([]flow.Bot, error)
	SaveReply(r Reply) error
	LastReply(phone string) (*Reply, error)
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{botsBucket, repliesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) CreateBot(b flow.Bot) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(botsBucket)
		if bucket.Get([]byte(b.ID)) != nil {
			return fmt.Errorf("bot %s: %w", b.ID, ErrExists)
		}
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(b.ID), data)
	})
}

func (s *BoltStore) GetBot(id string) (*flow.Bot, error) {
	var b flow.Bot
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(botsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("bot %s: %w", id, ErrNotFound)
		}
		return json.Unmarshal(v, &b)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBots returns the workspace's bots that are not archived, newest first.
// A non-empty ids restricts the result to those bots.
func (s *BoltStore) ListBots(workspaceID string, ids []string) ([]flow.Bot, error) {
	bots := []flow.Bot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(botsBucket).ForEach(func(_, v []byte) error {
			var b flow.Bot
			if err := json.Unmarshal(v, &b); err != nil {
				return err
			}
			if b.WorkspaceID != workspaceID || b.IsArchived {
				return nil
			}
			if len(ids) > 0 && !slices.Contains(ids, b.ID) {
				return nil
			}
			bots = append(bots, b)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(bots, func(a, b flow.Bot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return bots, nil
}

func (s *BoltStore) SaveReply(r Reply) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return tx.Bucket(repliesBucket).Put([]byte(r.Phone), data)
	})
}

func (s *BoltStore) LastReply(phone string) (*Reply, error) {
	var r Reply
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(repliesBucket).Get([]byte(phone))
		if v == nil {
			return fmt.Errorf("reply for %s: %w", phone, ErrNotFound)
		}
		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

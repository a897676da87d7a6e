package session

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketSession = []byte("session")
	keyAuthToken  = []byte("authToken")
)

// TokenStore persists the bearer token between runs, the way the browser
// build kept it in local storage. Absence of a token means logged out.
type TokenStore struct {
	db *bolt.DB
}

func OpenTokenStore(path string) (*TokenStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open token store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init token store: %w", err)
	}
	return &TokenStore{db: db}, nil
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *TokenStore) Token() string {
	var token string
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get(keyAuthToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token
}

func (s *TokenStore) Save(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyAuthToken, []byte(token))
	})
}

func (s *TokenStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyAuthToken)
	})
}

func (s *TokenStore) Close() error {
	return s.db.Close()
}

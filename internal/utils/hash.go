// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. Hash instances are pooled so
// that hot paths (every refresh request on the backend) do not allocate a
// new HMAC per call. A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// HashString returns the hex-encoded digest of s.
func (h *Hasher) HashString(s string) string {
	return hex.EncodeToString(h.Hash([]byte(s)))
}

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. It does not use a pool and suits one-off hashing.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

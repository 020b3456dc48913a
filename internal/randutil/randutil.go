/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package randutil provides a deterministic source of randomness
// backed by a salsa20 keystream, so that a whole sampling run can be
// reproduced from a 32-byte key.
package randutil

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const blockBytes = 512

// DetSource is a math/rand Source64 whose output is the salsa20
// keystream under a fixed key. Two sources created with the same key
// produce identical streams.
type DetSource struct {
	key   *[32]byte
	nonce uint64
	buf   []byte
	off   int
}

// NewDetSource returns an instance of the DetSource pseudo-random
// source determined by key.
func NewDetSource(key *[32]byte) *DetSource {
	k := *key
	return &DetSource{
		key: &k,
		buf: make([]byte, 0),
	}
}

func (s *DetSource) refill() {
	in := make([]byte, blockBytes)
	out := make([]byte, blockBytes)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)
	s.nonce++

	salsa20.XORKeyStream(out, in, nonce, s.key)

	s.buf = out
	s.off = 0
}

// Uint64 returns the next 8 bytes of the keystream as an unsigned
// integer.
func (s *DetSource) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8

	return v
}

// Int63 returns a non-negative 63-bit integer from the keystream.
func (s *DetSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed is a no-op: the stream is fixed by the key passed at
// construction.
func (s *DetSource) Seed(_ int64) {}

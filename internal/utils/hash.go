// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ChunkHash computes the hex-encoded SHA-256 digest of a binary upload
// chunk. The digest travels in the "upload.chunk" control message so the
// server can verify the frame that follows before accepting it.
func ChunkHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

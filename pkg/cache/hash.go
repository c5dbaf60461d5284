package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash is the hex SHA-256 of data. FileCache names its entries after the
// hash of the key, two characters per shard directory.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digest hashes the JSON array of parts. Each text is quoted on its own, so
// "98"+"101" and "981"+"01" never share a digest.
func digest(parts ...any) string {
	data, _ := json.Marshal(parts)
	return Hash(data)
}

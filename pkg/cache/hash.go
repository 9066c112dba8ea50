package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// keyVersion is bumped whenever the serialized form of a cached artifact
// changes, so entries written by older builds are never decoded.
const keyVersion = "v1"

// hashKey builds "prefix:v1:<sha256 of the JSON-encoded parts>".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + keyVersion + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data. Source files are identified by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

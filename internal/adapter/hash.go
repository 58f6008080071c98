package adapter

import (
	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("gooze-matcher:source-fingerprint")

// Fingerprint returns a stable 64-bit digest of content.
func Fingerprint(content []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}

	if _, err := hash.Write(content); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}

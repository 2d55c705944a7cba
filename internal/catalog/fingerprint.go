package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Fingerprint returns a hex digest of the corpus content that feeds the
// vector index. It changes whenever any title or description changes, so a
// stored index can be checked for staleness against the current corpus.
func (c *Catalog) Fingerprint() string {
	h := sha256.New()
	for _, book := range c.books {
		io.WriteString(h, book.Title)
		h.Write([]byte{0})
		io.WriteString(h, book.Description)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

package data

import "errors"

// Snapshot keys. The version suffix ties a stored blob to the shape the
// current code expects.
const (
	CatalogKey   = "catalogo_v1"
	GuestbookKey = "comentarios_v1"
)

// ErrNoSnapshot is returned by LoadSnapshot when nothing has been stored
// under the key yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store is a key-value blob store for serialized state. Writes always
// replace the whole blob; there is no partial update.
type Store interface {
	LoadSnapshot(key string) ([]byte, error)
	SaveSnapshot(key string, blob []byte) error
	Close() error
}

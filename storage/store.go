package storage

import (
	"os"
	"path"

	"github.com/timshannon/badgerhold"
)

const dirBadger string = "db"

// Store keeps PayloadItems in a badgerhold database below the given
// directory. It is used by the daemon for auditing; the codec packages
// never touch it.
type Store struct {
	bh *badgerhold.Store

	badgerDir string
}

func NewStore(dir string) (s *Store, err error) {
	badgerDir := path.Join(dir, dirBadger)

	opts := badgerhold.DefaultOptions
	opts.Dir = badgerDir
	opts.ValueDir = badgerDir

	if dirErr := os.MkdirAll(badgerDir, 0700); dirErr != nil {
		err = dirErr
		return
	}

	if bh, bhErr := badgerhold.Open(opts); bhErr != nil {
		err = bhErr
	} else {
		s = &Store{
			bh: bh,

			badgerDir: badgerDir,
		}
	}
	return
}

func (s *Store) Close() error {
	return s.bh.Close()
}

// Push inserts a PayloadItem.
func (s *Store) Push(pi PayloadItem) error {
	return s.bh.Insert(pi.Id, pi)
}

// QueryId returns the PayloadItem with the given id.
func (s *Store) QueryId(id string) (pi PayloadItem, err error) {
	err = s.bh.Get(id, &pi)
	return
}

// QueryChunkType returns all PayloadItems recorded for a chunk type.
func (s *Store) QueryChunkType(chunkType string) (pis []PayloadItem, err error) {
	err = s.bh.Find(&pis, badgerhold.Where("ChunkType").Eq(chunkType))
	return
}

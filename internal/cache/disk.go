package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Entry format changes
const schemaVersion uint16 = 1

// Digest identifies a cache entry: sha256 of the file content plus a salt.
type Digest [32]byte

// KeyFor derives the key for content under salt. The salt carries everything
// besides the content that affects the verdict: tool version and reference.
func KeyFor(content []byte, salt string) Digest {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte{0})
	h.Write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Entry is what the round-trip verifier remembers about a file.
type Entry struct {
	Schema    uint16
	Path      string
	Reference string
	Status    string
	Detail    string
}

// DiskCache хранит вердикты round-trip проверки по хэшу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a cache rooted at dir, creating it when needed.
func Open(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create cache dir %s", dir)
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDefault opens the cache at the standard per-user location.
func OpenDefault(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "locate home directory")
		}
		base = filepath.Join(home, ".cache")
	}
	return Open(filepath.Join(base, app))
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// два символа подкаталога, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "rt", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes an entry. A nil cache ignores the call.
func (c *DiskCache) Put(key Digest, e Entry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "create cache shard")
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp entry")
	}
	defer func() {
		// после Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&e); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encode cache entry")
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads an entry. Entries written by another schema are reported as misses.
func (c *DiskCache) Get(key Digest) (Entry, bool, error) {
	if c == nil {
		return Entry{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	var e Entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return Entry{}, false, errors.Wrapf(err, "decode cache entry %s", key)
	}
	if e.Schema != schemaVersion {
		return Entry{}, false, nil
	}
	return e, true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(filepath.Join(c.dir, "rt")); err != nil {
		return errors.Wrap(err, "drop cache")
	}
	return nil
}

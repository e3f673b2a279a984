package drafts

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/go-park-mail-ru/2019_1_Remastered/storage"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const draftKeyPrefix = "draft:"

// DraftAccessObject DAO for Draft
type DraftAccessObject interface {
	Create(d *Draft) error
	Get(id string) (*Draft, error)
	Save(d *Draft) error
	Delete(id string) error
}

var Drafts DraftAccessObject

func init() {
	Drafts = NewMemoryStore(time.Hour)
}

type memoryEntry struct {
	draft     Draft
	expiresAt time.Time
}

// MemoryStore черновики в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	drafts  map[string]*memoryEntry
	nowFunc func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		drafts:  make(map[string]*memoryEntry),
		nowFunc: time.Now,
	}
}

// Create заодно выкидывает протухшие черновики
func (ms *MemoryStore) Create(d *Draft) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.nowFunc()
	for id, e := range ms.drafts {
		if now.After(e.expiresAt) {
			delete(ms.drafts, id)
		}
	}

	ms.drafts[d.ID] = &memoryEntry{draft: *d, expiresAt: now.Add(ms.ttl)}
	return nil
}

func (ms *MemoryStore) Get(id string) (*Draft, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	e, ok := ms.drafts[id]
	if !ok {
		return nil, utils.ErrNotExists
	}

	if ms.nowFunc().After(e.expiresAt) {
		delete(ms.drafts, id)
		return nil, utils.ErrNotExists
	}

	d := e.draft
	return &d, nil
}

// Save продлевает жизнь черновика, протухший не воскрешается
func (ms *MemoryStore) Save(d *Draft) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.nowFunc()
	e, ok := ms.drafts[d.ID]
	if !ok {
		return utils.ErrNotExists
	}
	if now.After(e.expiresAt) {
		delete(ms.drafts, d.ID)
		return utils.ErrNotExists
	}

	ms.drafts[d.ID] = &memoryEntry{draft: *d, expiresAt: now.Add(ms.ttl)}
	return nil
}

func (ms *MemoryStore) Delete(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.drafts, id)
	return nil
}

// RedisStore черновики в redis с TTL
type RedisStore struct {
	ttl time.Duration
}

func NewRedisStore(ttl time.Duration) *RedisStore {
	return &RedisStore{ttl: ttl}
}

func (rs *RedisStore) Create(d *Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "draft marshal error")
	}

	if err = storage.Client.Set(draftKeyPrefix+d.ID, data, rs.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis save error")
	}

	return nil
}

func (rs *RedisStore) Get(id string) (*Draft, error) {
	data, err := storage.Client.Get(draftKeyPrefix + id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, utils.ErrNotExists
		}

		return nil, errors.Wrap(err, "redis get error")
	}

	d := &Draft{}
	if err = json.Unmarshal(data, d); err != nil {
		return nil, errors.Wrap(err, "draft unmarshal error")
	}

	return d, nil
}

// Save перезаписывает только существующий ключ (SET XX)
func (rs *RedisStore) Save(d *Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "draft marshal error")
	}

	ok, err := storage.Client.SetXX(draftKeyPrefix+d.ID, data, rs.ttl).Result()
	if err != nil {
		return errors.Wrap(err, "redis save error")
	}
	if !ok {
		return utils.ErrNotExists
	}

	return nil
}

func (rs *RedisStore) Delete(id string) error {
	if err := storage.Client.Del(draftKeyPrefix + id).Err(); err != nil {
		return errors.Wrap(err, "redis delete error")
	}

	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/telemetry/tracing"
)

const (
	sessionKeyPrefix = "posecheck:session:"

	fieldAsana     = "asana"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// setAsanaLua updates a session only while its hash still exists, and returns
// the hash as it is after the update. A missing session gives an empty reply.
const setAsanaLua = `
if redis.call('EXISTS', KEYS[1]) == 0 then
	return {}
end
redis.call('HSET', KEYS[1], '` + fieldAsana + `', ARGV[1], '` + fieldUpdatedAt + `', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return redis.call('HGETALL', KEYS[1])
`

var setAsanaScript = redis.NewScript(setAsanaLua)

type NewStoreParams struct {
	RedisClient *redis.Client
	TTL         time.Duration
	// CacheSize is the freecache size in bytes, zero disables the local cache.
	CacheSize int
	CacheTTL  time.Duration
}

// Store keeps sessions in redis hashes, with a small in-process read-through
// cache in front of them.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
	cache       *freecache.Cache
	// whole seconds, freecache treats 0 as no expiry
	cacheExpireSeconds int

	now   func() time.Time
	newID func() string
}

func NewStore(params NewStoreParams) *Store {
	s := &Store{
		redisClient: params.RedisClient,
		ttl:         params.TTL,
		now:         time.Now,
		newID:       uuid.NewString,

		cacheExpireSeconds: cacheExpireSeconds(params.CacheTTL),
	}
	if params.CacheSize > 0 {
		s.cache = freecache.NewCache(params.CacheSize)
	}
	return s
}

func cacheExpireSeconds(ttl time.Duration) int {
	seconds := int((ttl + time.Second - 1) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *Store) Create(ctx context.Context, asana pose.Asana) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.session.create")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if !asana.IsValid() {
		return nil, fmt.Errorf("%w: %s", pose.ErrUnknownPose, asana)
	}

	now := s.now().UTC().Truncate(time.Second)
	sess := &Session{
		ID:        s.newID(),
		Asana:     asana,
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("session", sess.ID))

	key := sessionKey(sess.ID)
	if err := s.redisClient.HSet(ctx, key,
		fieldAsana, string(asana),
		fieldCreatedAt, now.Unix(),
		fieldUpdatedAt, now.Unix(),
	).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	if err := s.redisClient.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("set session ttl: %w", err)
	}

	s.cacheSet(sess)
	return sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.session.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("session", id))

	if sess, ok := s.cacheGet(id); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		return sess, nil
	}

	fields, err := s.redisClient.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	sess, err := sessionFromFields(id, fields)
	if err != nil {
		return nil, err
	}

	s.cacheSet(sess)
	return sess, nil
}

func (s *Store) SetAsana(ctx context.Context, id string, asana pose.Asana) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.session.setasana")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("session", id), attribute.String("asana", string(asana)))

	if !asana.IsValid() {
		return nil, fmt.Errorf("%w: %s", pose.ErrUnknownPose, asana)
	}

	s.cacheDel(id)

	now := s.now().UTC().Truncate(time.Second)
	// switching poses keeps the session alive
	reply, err := setAsanaScript.Run(ctx, s.redisClient,
		[]string{sessionKey(id)},
		string(asana), now.Unix(), s.ttl.Milliseconds(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if len(reply) == 0 {
		return nil, ErrSessionNotFound
	}

	fields, err := fieldsFromReply(reply)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	sess, err := sessionFromFields(id, fields)
	if err != nil {
		return nil, err
	}

	s.cacheSet(sess)
	return sess, nil
}

// fieldsFromReply turns a flat HGETALL reply into a field map.
func fieldsFromReply(reply []interface{}) (map[string]string, error) {
	if len(reply)%2 != 0 {
		return nil, fmt.Errorf("odd hash reply length %d", len(reply))
	}
	fields := make(map[string]string, len(reply)/2)
	for i := 0; i < len(reply); i += 2 {
		field, ok := reply[i].(string)
		if !ok {
			return nil, fmt.Errorf("hash field %v is %T", reply[i], reply[i])
		}
		value, ok := reply[i+1].(string)
		if !ok {
			return nil, fmt.Errorf("hash value of %s is %T", field, reply[i+1])
		}
		fields[field] = value
	}
	return fields, nil
}

func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.session.delete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("session", id))

	s.cacheDel(id)

	deleted, err := s.redisClient.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func sessionFromFields(id string, fields map[string]string) (*Session, error) {
	asana := pose.Asana(fields[fieldAsana])
	if !asana.IsValid() {
		return nil, fmt.Errorf("session %s: stored %w: %q", id, pose.ErrUnknownPose, asana)
	}

	createdAt, err := parseUnix(fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("session %s: created at: %w", id, err)
	}
	updatedAt, err := parseUnix(fields[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("session %s: updated at: %w", id, err)
	}

	return &Session{
		ID:        id,
		Asana:     asana,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func parseUnix(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).UTC(), nil
}

func (s *Store) cacheGet(id string) (*Session, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get([]byte(id))
	if err != nil {
		return nil, false
	}
	sess := &Session{}
	if err := json.Unmarshal(raw, sess); err != nil {
		log.Warnf("session cache: corrupt entry for %s: %s", id, err)
		s.cache.Del([]byte(id))
		return nil, false
	}
	return sess, true
}

func (s *Store) cacheSet(sess *Session) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		log.Errorf("session cache: marshal %s: %s", sess.ID, err)
		return
	}
	if err := s.cache.Set([]byte(sess.ID), raw, s.cacheExpireSeconds); err != nil {
		log.Warnf("session cache: set %s: %s", sess.ID, err)
	}
}

func (s *Store) cacheDel(id string) {
	if s.cache == nil {
		return
	}
	s.cache.Del([]byte(id))
}

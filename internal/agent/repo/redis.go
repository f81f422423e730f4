// Package repo persists session turn history. The engine treats persistence
// as best-effort: a failed write is logged, never surfaced to the user.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
	errx "github.com/rehman-travels/visabot/server/internal/core/error"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

const turnKeyFormat = "session:%s:turns"

// RedisSessionRepository stores each session's turns as a Redis list of JSON
// documents with a sliding TTL.
type RedisSessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ model.SessionRepository = (*RedisSessionRepository)(nil)

func NewRedisSessionRepository(rdb redis.Cmdable, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

// AppendTurn pushes the turn onto the session's list and refreshes the TTL,
// so an active conversation never expires mid-dialog.
func (r *RedisSessionRepository) AppendTurn(ctx context.Context, sessionID string, turn *model.TurnRecord) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return errx.New(err, http.StatusInternalServerError, errx.SystemErrorMessage)
	}

	key := turnKey(sessionID)
	if err := r.rdb.RPush(ctx, key, payload).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	if err := r.rdb.Expire(ctx, key, r.ttl).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

// LoadTurns returns every stored turn for the session, oldest first. A
// missing key yields an empty history, not an error.
func (r *RedisSessionRepository) LoadTurns(ctx context.Context, sessionID string) ([]*model.TurnRecord, error) {
	raw, err := r.rdb.LRange(ctx, turnKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, errx.WrapRedis(err)
	}

	turns := make([]*model.TurnRecord, 0, len(raw))
	for _, item := range raw {
		var turn model.TurnRecord
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			logx.Warn().Err(err).Str("session_id", sessionID).Msg("skipping undecodable turn record")
			continue
		}
		turns = append(turns, &turn)
	}
	return turns, nil
}

// ClearTurns drops the session's stored history.
func (r *RedisSessionRepository) ClearTurns(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, turnKey(sessionID)).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

// TurnCount reports how many turns are stored for the session.
func (r *RedisSessionRepository) TurnCount(ctx context.Context, sessionID string) (int, error) {
	n, err := r.rdb.LLen(ctx, turnKey(sessionID)).Result()
	if err != nil {
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

func turnKey(sessionID string) string {
	return fmt.Sprintf(turnKeyFormat, sessionID)
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

var Rdb *redis.Client

// snapshotTTL bounds how stale a cached schedule snapshot can get if an
// invalidation is ever missed.
const snapshotTTL = 30 * time.Second

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func scheduleSnapshotKey(organizationID int) string {
	return fmt.Sprintf("org:%d:schedules", organizationID)
}

// GetScheduleSnapshot returns the cached active-schedule snapshot for an
// organization, or ok=false on a miss. The snapshot is stored as one value so
// every reader sees a single time-consistent schedule list.
func GetScheduleSnapshot(ctx context.Context, organizationID int) ([]model.Schedule, bool) {
	if Rdb == nil {
		return nil, false
	}
	raw, err := Rdb.Get(ctx, scheduleSnapshotKey(organizationID)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []model.Schedule
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Int("organization_id", organizationID).Msg("discarding malformed schedule snapshot")
		return nil, false
	}
	return out, true
}

func SetScheduleSnapshot(ctx context.Context, organizationID int, schedules []model.Schedule) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(schedules)
	if err != nil {
		log.Warn().Err(err).Int("organization_id", organizationID).Msg("failed to marshal schedule snapshot")
		return
	}
	if err := Rdb.Set(ctx, scheduleSnapshotKey(organizationID), raw, snapshotTTL).Err(); err != nil {
		log.Warn().Err(err).Int("organization_id", organizationID).Msg("failed to cache schedule snapshot")
	}
}

// InvalidateScheduleSnapshot drops the cached snapshot after any schedule
// write so devices pick up the change on their next check-in.
func InvalidateScheduleSnapshot(ctx context.Context, organizationID int) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, scheduleSnapshotKey(organizationID)).Err(); err != nil {
		log.Warn().Err(err).Int("organization_id", organizationID).Msg("failed to invalidate schedule snapshot")
	}
}

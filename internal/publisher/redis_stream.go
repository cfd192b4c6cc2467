package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// scheduleStream carries schedule-changed events for downstream consumers
// (notification workers, the web frontend's SSE bridge).
const scheduleStream = "courtside.schedule.updates"

// ScheduleUpdate is one schedule-changed event.
type ScheduleUpdate struct {
	Reason    string `json:"reason"` // player-added, player-removed, schedule-reloaded, tipoffs-updated
	GameCount int    `json:"game_count"`
	DateCount int    `json:"date_count"`
}

// RedisStreamPublisher publishes schedule events to a Redis stream.
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a publisher from an existing client.
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client}
}

// PublishScheduleUpdate appends one event to the schedule stream.
func (rsp *RedisStreamPublisher) PublishScheduleUpdate(ctx context.Context, update ScheduleUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: scheduleStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

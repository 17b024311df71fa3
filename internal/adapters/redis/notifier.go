// Package redisadapter delivers notifications through Redis: each user has a
// capped inbox list, and every notification is also published on a channel
// for live subscribers.
package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"organease/internal/ports"
)

const (
	DefaultPrefix = "organease"
	// InboxCap bounds each user's inbox list.
	InboxCap = 200
)

var (
	_ ports.Notifier = (*Notifier)(nil)
	_ ports.Inbox    = (*Notifier)(nil)
)

type Notifier struct {
	client    *redis.Client
	keyPrefix string
}

// Connect parses a redis:// URL and checks the connection.
func Connect(ctx context.Context, url, prefix string) (*Notifier, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return New(client, prefix), nil
}

func New(client *redis.Client, prefix string) *Notifier {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Notifier{client: client, keyPrefix: prefix}
}

func (n *Notifier) Close() error {
	if n.client != nil {
		return n.client.Close()
	}
	return nil
}

func (n *Notifier) key(parts ...string) string {
	key := n.keyPrefix
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func (n *Notifier) inboxKey(userID string) string { return n.key("notifications", userID) }

// Channel is the pub/sub channel carrying every notification.
func (n *Notifier) Channel() string { return n.key("notifications") }

func (n *Notifier) Notify(ctx context.Context, msg ports.Notification) error {
	if msg.UserID == "" {
		return fmt.Errorf("notification without user")
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pipe := n.client.TxPipeline()
	pipe.LPush(ctx, n.inboxKey(msg.UserID), data)
	pipe.LTrim(ctx, n.inboxKey(msg.UserID), 0, InboxCap-1)
	pipe.Publish(ctx, n.Channel(), data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deliver notification to %s: %w", msg.UserID, err)
	}
	return nil
}

func (n *Notifier) Inbox(ctx context.Context, userID string, limit int) ([]ports.Notification, error) {
	if limit <= 0 || limit > InboxCap {
		limit = InboxCap
	}
	raw, err := n.client.LRange(ctx, n.inboxKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]ports.Notification, 0, len(raw))
	for _, r := range raw {
		var msg ports.Notification
		if err := json.Unmarshal([]byte(r), &msg); err != nil {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

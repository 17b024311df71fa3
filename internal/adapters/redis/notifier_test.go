package redisadapter

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/ports"
)

func TestKeys(t *testing.T) {
	n := New(nil, "")
	assert.Equal(t, "organease:notifications:u1", n.inboxKey("u1"))
	assert.Equal(t, "organease:notifications", n.Channel())

	n = New(nil, "staging")
	assert.Equal(t, "staging:notifications:u1", n.inboxKey("u1"))
}

func TestNotifyInbox(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	n, err := Connect(ctx, url, "test-"+uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close() })

	sub := n.client.Subscribe(ctx, n.Channel())
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, n.Notify(ctx, ports.Notification{UserID: "u1", Title: "first"}))
	require.NoError(t, n.Notify(ctx, ports.Notification{UserID: "u1", Title: "second", ActionURL: "/matches/m1"}))

	got, err := n.Inbox(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Title)
	assert.Equal(t, "/matches/m1", got[0].ActionURL)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Contains(t, msg.Payload, `"first"`)

	assert.Error(t, n.Notify(ctx, ports.Notification{Title: "nobody"}))
}

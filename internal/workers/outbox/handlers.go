package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"organease/internal/ports"
)

// NotificationHandler delivers notification.send jobs.
type NotificationHandler struct{ Notifier ports.Notifier }

func (h NotificationHandler) Handle(ctx context.Context, job ports.Job) error {
	var n ports.Notification
	if err := json.Unmarshal(job.Payload, &n); err != nil {
		return fmt.Errorf("decode notification job %s: %w", job.ID, err)
	}
	if n.UserID == "" {
		return fmt.Errorf("notification job %s has no user", job.ID)
	}
	return h.Notifier.Notify(ctx, n)
}

package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/plugins/notifiers/webhook"
	"github.com/Dafi-web/events-sub000/plugins/notifiers/webhook/mocks"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func replyNotification(user, body string) domain.Notification {
	return domain.Notification{
		User: user,
		Message: domain.NotificationMessage{
			Type: domain.NotificationTypeCommentReply,
			Variables: map[string]interface{}{
				"content_type":     "event",
				"content_id":       "event-1",
				"parent_id":        "parent-1",
				"comment_id":       "comment-1",
				"reply_created_by": "user-2",
				"body":             body,
			},
		},
	}
}

func TestNotify(t *testing.T) {
	t.Run("should post rendered default template", func(t *testing.T) {
		client := mocks.NewHttpClient(t)
		notifier := webhook.NewNotifier(&webhook.Config{}, client, log.NewNoop())

		var sent map[string]interface{}
		client.EXPECT().Send(mock.Anything, mock.Anything).
			Run(func(_ context.Context, body []byte) {
				require.NoError(t, json.Unmarshal(body, &sent))
			}).
			Return(response(http.StatusNoContent, ""), nil).
			Once()

		errs := notifier.Notify(context.Background(), []domain.Notification{replyNotification("user-1", `say "hi"`)})

		assert.Nil(t, errs)
		assert.Equal(t, "user-1", sent["user"])
		assert.Equal(t, domain.NotificationTypeCommentReply, sent["type"])
		message := sent["message"].(map[string]interface{})
		assert.Equal(t, `user-2 replied to your comment: say "hi"`, message["text"])
		assert.Equal(t, "parent-1", message["parent_id"])
	})

	t.Run("should collect errors per notification", func(t *testing.T) {
		client := mocks.NewHttpClient(t)
		notifier := webhook.NewNotifier(&webhook.Config{}, client, log.NewNoop())

		client.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
		client.EXPECT().Send(mock.Anything, mock.Anything).Return(response(http.StatusBadRequest, "bad payload"), nil).Once()

		errs := notifier.Notify(context.Background(), []domain.Notification{
			replyNotification("user-1", "a"),
			replyNotification("user-3", "b"),
			{User: "user-4", Message: domain.NotificationMessage{Type: "Unknown"}},
		})

		require.Len(t, errs, 3)
		assert.ErrorContains(t, errs[0], "connection refused")
		assert.ErrorContains(t, errs[1], "bad payload")
		assert.ErrorContains(t, errs[2], "template not found")
	})
}

func TestParseMessage(t *testing.T) {
	t.Run("should prefer configured template", func(t *testing.T) {
		msg, err := webhook.ParseMessage(domain.NotificationMessage{
			Type:      domain.NotificationTypeCommentModerated,
			Variables: map[string]interface{}{"action": "hide"},
		}, domain.NotificationMessages{CommentModerated: `{"text":"{{.action}}"}`}, webhook.DefaultTemplates)

		assert.NoError(t, err)
		assert.JSONEq(t, `{"text":"hide"}`, msg)
	})

	t.Run("should reject templates rendering invalid JSON", func(t *testing.T) {
		_, err := webhook.ParseMessage(domain.NotificationMessage{
			Type: domain.NotificationTypeCommentModerated,
		}, domain.NotificationMessages{CommentModerated: `not json`}, webhook.DefaultTemplates)

		assert.Error(t, err)
	})

	t.Run("should render numeric variables of the flagged comments reminder", func(t *testing.T) {
		msg, err := webhook.ParseMessage(domain.NotificationMessage{
			Type: domain.NotificationTypeFlaggedCommentsReminder,
			Variables: map[string]interface{}{
				"flagged_comments_count": 3,
				"min_flags":              2,
			},
		}, domain.NotificationMessages{}, webhook.DefaultTemplates)

		require.NoError(t, err)
		var rendered map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(msg), &rendered))
		assert.Equal(t, float64(3), rendered["flagged_comments_count"])
	})
}

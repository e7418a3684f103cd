package webhook

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

//go:embed templates/*
var defaultTemplates embed.FS

//go:generate mockery --name=httpClient --exported --with-expecter
type httpClient interface {
	Send(ctx context.Context, body []byte) (*http.Response, error)
}

type Config struct {
	Messages domain.NotificationMessages
}

// Notifier posts one JSON message per notification to a webhook.
type Notifier struct {
	messages            domain.NotificationMessages
	httpClient          httpClient
	defaultMessageFiles embed.FS
	logger              log.Logger
}

type payload struct {
	User    string            `json:"user"`
	Labels  map[string]string `json:"labels,omitempty"`
	Type    string            `json:"type"`
	Message json.RawMessage   `json:"message"`
}

func NewNotifier(config *Config, httpClient httpClient, logger log.Logger) *Notifier {
	return &Notifier{
		messages:            config.Messages,
		httpClient:          httpClient,
		defaultMessageFiles: defaultTemplates,
		logger:              logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		n.logger.Debug(ctx, "sending webhook notification", "user", item.User, "type", item.Message.Type)

		msg, err := ParseMessage(item.Message, n.messages, n.defaultMessageFiles)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message for user %q: %w", item.User, err))
			continue
		}

		body, err := json.Marshal(payload{
			User:    item.User,
			Labels:  item.Labels,
			Type:    item.Message.Type,
			Message: json.RawMessage(msg),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("error encoding payload for user %q: %w", item.User, err))
			continue
		}

		if err := n.send(ctx, body); err != nil {
			errs = append(errs, fmt.Errorf("error sending notification to user %q: %w", item.User, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (n *Notifier) send(ctx context.Context, body []byte) error {
	resp, err := n.httpClient.Send(ctx, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}

func getDefaultTemplate(messageType string, defaultTemplateFiles embed.FS) (string, error) {
	content, err := defaultTemplateFiles.ReadFile(fmt.Sprintf("templates/%s.json", messageType))
	if err != nil {
		return "", fmt.Errorf("error finding default template for message type %s - %w", messageType, err)
	}
	return string(content), nil
}

// ParseMessage renders the message template of the notification type. A
// configured template overrides the embedded default. Variables are JSON
// escaped before rendering.
func ParseMessage(message domain.NotificationMessage, templates domain.NotificationMessages, defaultTemplateFiles embed.FS) (string, error) {
	messageTypeTemplateMap := map[string]string{
		domain.NotificationTypeCommentReply:            templates.CommentReply,
		domain.NotificationTypeCommentModerated:        templates.CommentModerated,
		domain.NotificationTypeFlaggedCommentsReminder: templates.FlaggedCommentsReminder,
	}

	messageBlock, ok := messageTypeTemplateMap[message.Type]
	if !ok {
		return "", fmt.Errorf("template not found for message type %s", message.Type)
	}

	if messageBlock == "" {
		defaultTemplate, err := getDefaultTemplate(message.Type, defaultTemplateFiles)
		if err != nil {
			return "", err
		}
		messageBlock = defaultTemplate
	}

	t, err := template.New("notification_messages").Parse(messageBlock)
	if err != nil {
		return "", err
	}

	var buff bytes.Buffer
	if err := t.Execute(&buff, escapeVariables(message.Variables)); err != nil {
		return "", err
	}

	if !json.Valid(buff.Bytes()) {
		return "", fmt.Errorf("rendered message for type %s is not valid JSON", message.Type)
	}
	return buff.String(), nil
}

func escapeVariables(vars map[string]interface{}) map[string]interface{} {
	escaped := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		s, ok := v.(string)
		if !ok {
			escaped[k] = v
			continue
		}
		quoted, _ := json.Marshal(s)
		escaped[k] = string(quoted[1 : len(quoted)-1])
	}
	return escaped
}

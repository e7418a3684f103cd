package notifiers

import (
	"context"
	"errors"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/http"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/plugins/notifiers/webhook"
)

type Client interface {
	Notify(context.Context, []domain.Notification) []error
}

const (
	ProviderTypeWebhook = "webhook"
)

type Config struct {
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=webhook"`

	// webhook
	Webhook *http.HTTPClientConfig `mapstructure:"webhook" validate:"required_if=Provider webhook"`

	// custom messages
	Messages domain.NotificationMessages `mapstructure:"messages"`
}

// NewClient returns the configured notifier. Without a provider the returned
// client only logs the notifications.
func NewClient(config *Config, logger log.Logger) (Client, error) {
	switch config.Provider {
	case ProviderTypeWebhook:
		if config.Webhook == nil {
			return nil, errors.New("webhook config is required for webhook notifier")
		}
		httpClient, err := http.NewHTTPClient(config.Webhook, nil)
		if err != nil {
			return nil, err
		}
		return webhook.NewNotifier(&webhook.Config{Messages: config.Messages}, httpClient, logger), nil
	case "":
		return &logNotifier{logger: logger}, nil
	}

	return nil, errors.New("invalid notifier provider type")
}

type logNotifier struct {
	logger log.Logger
}

func (n *logNotifier) Notify(ctx context.Context, items []domain.Notification) []error {
	for _, item := range items {
		n.logger.Debug(ctx, "notification not sent, no notifier configured", "user", item.User, "type", item.Message.Type)
	}
	return nil
}

package turboslack

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type SlackBot struct {
	client       *slack.Client
	socketClient *socketmode.Client
	eventHandler *Handler
}

func NewSlackBot(appToken, botToken string, bump float64) (*SlackBot, error) {
	if appToken == "" || botToken == "" {
		return nil, fmt.Errorf("slack app and bot tokens are required")
	}

	client := slack.New(
		botToken,
		slack.OptionAppLevelToken(appToken),
	)

	socketClient := socketmode.New(client)

	return &SlackBot{
		client:       client,
		socketClient: socketClient,
		eventHandler: NewHandler(bump),
	}, nil
}

func (sb *SlackBot) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go sb.dispatch(ctx)

	return sb.socketClient.RunContext(ctx)
}

// dispatch routes socket-mode events to the handler until ctx is done or the event channel closes.
func (sb *SlackBot) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-sb.socketClient.Events:
			if !ok {
				return
			}
			switch evt.Type {
			case socketmode.EventTypeConnected:
				log.Info("connected to slack")
			case socketmode.EventTypeSlashCommand:
				if err := sb.eventHandler.Handle(&evt, sb.socketClient); err != nil {
					log.WithError(err).Error("failed to handle slash command")
				}
			}
		}
	}
}

package turboslack

import (
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Handler struct {
	helpHandler  *HelpHandler
	turboHandler *TurboHandler
}

func NewHandler(bump float64) *Handler {
	return &Handler{
		helpHandler:  NewHelpHandler(),
		turboHandler: NewTurboHandler(bump),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data, ok := evt.Data.(slack.SlashCommand)
	if !ok {
		return nil
	}

	// Slack expects the ack within three seconds, before any reply is posted.
	client.Ack(*evt.Request)

	var err error
	switch data.Command {
	case "/help":
		err = h.helpHandler.HandleCommand(evt, client)
	case "/turbo":
		err = h.turboHandler.HandleCommand(evt, client)
	default:
		log.WithField("command", data.Command).Debug("ignoring unknown slash command")
	}
	return err
}

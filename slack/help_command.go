package turboslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const helpText = "Available commands:\n" +
	"/help - Show this help message\n" +
	"/turbo <call|put> <spot> <strike> <maturity> <rate> <volatility> <barrier> <rebateMaturity> [dividendYield] - Price a turbo warrant"

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(helpText, false))
	return err
}

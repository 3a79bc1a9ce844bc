package turboslack

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/bcdannyboy/turbo/models"
	"github.com/bcdannyboy/turbo/positions"
)

const turboUsage = "Usage: /turbo <call|put> <spot> <strike> <maturity> <rate> <volatility> <barrier> <rebateMaturity> [dividendYield]"

type TurboHandler struct {
	bump float64
}

func NewTurboHandler(bump float64) *TurboHandler {
	if bump <= 0 {
		bump = positions.DefaultSpotBump
	}
	return &TurboHandler{bump: bump}
}

func (h *TurboHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)

	reply, err := h.Reply(data.Text)
	if err != nil {
		log.WithError(err).WithField("text", data.Text).Warn("rejected /turbo request")
		reply = fmt.Sprintf("Error: %s\n%s", err, turboUsage)
	}

	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(reply, false))
	return err
}

// Reply prices the request in text and formats the answer posted back to the channel.
func (h *TurboHandler) Reply(text string) (string, error) {
	variant, in, err := parseTurboArgs(text)
	if err != nil {
		return "", err
	}

	res, err := positions.CalculateTurboMetrics(in, variant, h.bump)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Turbo %s S0=%g K=%g H=%g T=%g\n", variant, in.Spot, in.Strike, in.Barrier, in.Maturity)
	fmt.Fprintf(&b, "Price: %.6f\n", res.Price)
	fmt.Fprintf(&b, "Barrier leg: %.6f\n", res.Barrier)
	fmt.Fprintf(&b, "Vanilla: %.6f\n", res.Vanilla)
	fmt.Fprintf(&b, "Delta up/down (bump %g): %.6f / %.6f", res.SpotBump, res.DeltaUp, res.DeltaDown)
	if res.BarrierBreached {
		b.WriteString("\nWarning: spot is already through the barrier")
	}
	return b.String(), nil
}

func parseTurboArgs(text string) (models.OptionVariant, models.Inputs, error) {
	args := strings.Fields(text)
	if len(args) != 8 && len(args) != 9 {
		return 0, models.Inputs{}, fmt.Errorf("expected 8 or 9 arguments, got %d", len(args))
	}

	variant, err := models.ParseOptionVariant(args[0])
	if err != nil {
		return 0, models.Inputs{}, err
	}

	names := []string{"spot", "strike", "maturity", "rate", "volatility", "barrier", "rebateMaturity", "dividendYield"}
	values := make([]float64, len(names))
	for i, raw := range args[1:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, models.Inputs{}, fmt.Errorf("%w: %s=%q is not a number", models.ErrInvalidParameter, names[i], raw)
		}
		values[i] = v
	}

	return variant, models.Inputs{
		Spot:           values[0],
		Strike:         values[1],
		Maturity:       values[2],
		Rate:           values[3],
		Volatility:     values[4],
		Barrier:        values[5],
		RebateMaturity: values[6],
		DividendYield:  values[7],
	}, nil
}

// Package payment models how the bot presents premium purchases. The
// actual charge never happens here: manual payments are verified by an
// admin, gateway payments by an external callback. Which provider is in
// use is a configuration decision made once at startup, not a runtime
// capability probe.
package payment

import (
	"fmt"
	"strings"

	"github.com/priyansh563/studybot/internal/pricing"
)

type Provider interface {
	// PlanSelection reports whether the buy screen offers per-plan
	// buttons (gateway) or a single static instruction text (manual).
	PlanSelection() bool

	// BuyText is the body of the buy screen.
	BuyText() string

	// PlanText is the reply after the user picks a plan.
	PlanText(plan pricing.Plan) string
}

// Manual is the UPI flow: pay out of band, then /redeem the transaction id
// and wait for an admin to verify.
type Manual struct {
	UPIID string
	Note  string
}

func (m Manual) PlanSelection() bool { return false }

func (m Manual) BuyText() string {
	lines := []string{"⭐ <b>Premium Plans</b>"}
	for _, p := range pricing.All() {
		lines = append(lines, "• "+p.Label)
	}
	lines = append(lines,
		"",
		"Premium unlocks Test Series, Exclusive Notes, Sample Papers &amp; Fast Support.",
		"",
		fmt.Sprintf("1) UPI: <code>%s</code>", m.UPIID),
		fmt.Sprintf("2) Note me likhein: <code>%s</code>", m.Note),
		"3) TXN ID bhejein: /redeem &lt;TXN_ID&gt;",
		"4) Admin verify karenge aur premium activate ho jayega.",
	)
	return strings.Join(lines, "\n")
}

func (m Manual) PlanText(plan pricing.Plan) string {
	return fmt.Sprintf("Pay <b>%s</b> to <code>%s</code> and send /redeem &lt;TXN_ID&gt;.", plan.Label, m.UPIID)
}

// Gateway presents per-plan buttons. Order creation and verification live
// with the gateway integration, outside this repo.
type Gateway struct {
	Name string
}

func (g Gateway) PlanSelection() bool { return true }

func (g Gateway) BuyText() string {
	return "Choose Premium plan:"
}

func (g Gateway) PlanText(plan pricing.Plan) string {
	return fmt.Sprintf("Creating %s order for <b>%s</b>… You will receive a payment link shortly.", g.Name, plan.Label)
}

package pricing

import "sort"

// Plan describes one purchasable premium block. Amounts are in paise.
type Plan struct {
	Key    string
	Months int
	Amount int64
	Label  string
}

var plans = map[string]Plan{
	"1m":  {Key: "1m", Months: 1, Amount: 9900, Label: "1 Month ₹99"},
	"3m":  {Key: "3m", Months: 3, Amount: 24900, Label: "3 Months ₹249"},
	"12m": {Key: "12m", Months: 12, Amount: 69900, Label: "12 Months ₹699"},
}

func Get(key string) (Plan, bool) {
	p, ok := plans[key]
	return p, ok
}

// All returns the plans ordered by duration.
func All() []Plan {
	out := make([]Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Months < out[j].Months })
	return out
}

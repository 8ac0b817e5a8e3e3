package core

// CategoryAmount represents an amount aggregated by category name. The key
// is the trimmed category string as stored on the transactions.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// SumByCategory aggregates the wallet's transactions of the given kind per
// category. Entries are ordered by first appearance of each category, so
// repeated calls over the same wallet yield the same order.
func (w *Wallet) SumByCategory(kind Kind) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for _, t := range w.Transactions {
		if t.Kind != kind {
			continue
		}
		if i, ok := index[t.Category]; ok {
			out[i].Amount = out[i].Amount.Add(t.Amount)
			continue
		}
		index[t.Category] = len(out)
		out = append(out, CategoryAmount{Name: t.Category, Amount: t.Amount})
	}
	return out
}

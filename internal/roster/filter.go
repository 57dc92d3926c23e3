package roster

import "strings"

// Filter returns the recipients whose fields contain every word of query
// (case-insensitive). An empty query returns all recipients.
func Filter(recipients []Recipient, query string) []Recipient {
	kw := strings.Fields(strings.ToLower(query))
	if len(kw) == 0 {
		return recipients
	}
	out := []Recipient{}
	for _, r := range recipients {
		hay := strings.ToLower(strings.Join([]string{r.Field1, r.Field2, r.Field3}, " "))
		ok := true
		for _, k := range kw {
			if !strings.Contains(hay, k) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

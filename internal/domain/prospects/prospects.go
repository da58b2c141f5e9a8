// Package prospects serves the static demo outreach dataset. No storage
// backs it; the sample lives in the binary.
package prospects

// Prospect is one outreach candidate in the demo dataset
type Prospect struct {
	Name         string  `json:"name"`
	Website      *string `json:"website"`
	Instagram    *string `json:"instagram"`
	LastPostDays *int    `json:"last_post_days"`
	Notes        string  `json:"notes"`
}

var sample = []Prospect{
	{
		Name:         "Sunrise Pediatrics",
		Website:      str("https://example.com"),
		Instagram:    str("https://instagram.com/sunrisepeds"),
		LastPostDays: num(58),
		Notes:        "Low posting cadence; bilingual gap; strong reviews",
	},
	{
		Name:         "Clinica Esperanza",
		Instagram:    str("https://instagram.com/clinicaesperanza"),
		LastPostDays: num(6),
		Notes:        "No website; ES-first; candidate for lead form + WhatsApp CTA",
	},
	{
		Name:    "Family Med West",
		Website: str("https://fammedwest.example"),
		Notes:   "Site exists; no social; consider Google Maps + website refresh",
	},
}

// Sample returns up to limit demo prospects. A non-positive limit returns
// the whole dataset.
func Sample(limit int) []Prospect {
	if limit <= 0 || limit > len(sample) {
		limit = len(sample)
	}
	out := make([]Prospect, limit)
	copy(out, sample[:limit])
	return out
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

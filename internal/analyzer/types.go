package analyzer

import (
	"sort"
	"time"
)

// IPStats aggregates the failed attempts observed for one source IP.
// FirstSeen/LastSeen stay nil until a match with a valid timestamp
// arrives; a nil value means "not yet constrained", never "zero time".
type IPStats struct {
	IP        string     `json:"ip"`
	Count     int        `json:"count"`
	FirstSeen *time.Time `json:"first_seen,omitempty"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`
}

// Analysis is the result of one aggregation pass over a log file.
type Analysis struct {
	Source       string `json:"source"`
	TotalLines   int    `json:"total_lines"`
	MatchedLines int    `json:"matched_lines"`

	stats map[string]*IPStats
	order []string // IPs in first-encounter order, the ranking tiebreak
}

// NewAnalysis creates an empty analysis for the given source.
func NewAnalysis(source string) *Analysis {
	return &Analysis{
		Source: source,
		stats:  make(map[string]*IPStats),
	}
}

// Record counts one matched line for ip. A nil timestamp still counts
// the attempt but leaves the seen range untouched.
func (a *Analysis) Record(ip string, ts *time.Time) {
	st, ok := a.stats[ip]
	if !ok {
		st = &IPStats{IP: ip}
		a.stats[ip] = st
		a.order = append(a.order, ip)
	}
	st.Count++

	if ts == nil {
		return
	}
	if st.FirstSeen == nil || ts.Before(*st.FirstSeen) {
		st.FirstSeen = ts
	}
	if st.LastSeen == nil || ts.After(*st.LastSeen) {
		st.LastSeen = ts
	}
}

// Stats returns the aggregate for ip, or nil if it was never seen.
func (a *Analysis) Stats(ip string) *IPStats {
	return a.stats[ip]
}

// DistinctIPs returns the number of distinct offending IPs.
func (a *Analysis) DistinctIPs() int {
	return len(a.order)
}

// Offenders returns every IP ranked by descending attempt count.
// Ties keep first-encounter order (stable sort, no secondary key).
func (a *Analysis) Offenders() []*IPStats {
	ranked := make([]*IPStats, 0, len(a.order))
	for _, ip := range a.order {
		ranked = append(ranked, a.stats[ip])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// TopN returns the n highest-ranked offenders. n larger than the number
// of distinct IPs returns all of them; n <= 0 returns none.
func (a *Analysis) TopN(n int) []*IPStats {
	ranked := a.Offenders()
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	topTopicsLimit = 20
	topCTALimit    = 10
	topMonetLimit  = 5
	minTopicLen    = 3
)

// KeywordConfig holds the immutable keyword lists the scanner matches
// against. The lists are injected at construction so tests can
// substitute their own; DefaultKeywordConfig returns the canonical sets.
type KeywordConfig struct {
	Stopwords    []string
	CTA          []string
	Monetization []string
	Community    []string
}

// DefaultKeywordConfig returns the canonical keyword lists.
func DefaultKeywordConfig() KeywordConfig {
	return KeywordConfig{
		Stopwords: []string{
			"the", "and", "for", "with", "to", "a", "in", "of", "is",
			"how", "what", "learn", "tutorial", "lesson", "video",
			"introduction", "session",
		},
		CTA: []string{
			"subscribe", "join", "enroll", "download", "signup", "sign up",
			"visit", "buy", "purchase", "link in description", "link in bio",
			"course", "free course", "patreon", "donate", "sponsor",
			"sponsored", "affiliate", "discount",
		},
		Monetization: []string{
			"sponsor", "sponsored", "affiliate", "udemy", "coursera",
			"patreon", "merch", "adsense", "brand",
		},
		Community: []string{
			"discord", "telegram", "community", "facebook group",
			"paid community", "newsletter", "live session", "q&a",
			"ask your doubt", "join us",
		},
	}
}

var titleTokenRE = regexp.MustCompile(`[A-Za-z0-9+#]+`)

// TopicStats summarizes the title tokens that survive stopword and
// length filtering.
type TopicStats struct {
	// Topics holds the top 20 tokens by frequency; ties keep
	// first-seen order.
	Topics       []string
	UniqueTokens int
	TotalTokens  int
}

// TopTopics tokenizes the given titles and ranks the surviving tokens
// by frequency. Tokens are maximal runs of [A-Za-z0-9+#], lowercased;
// tokens of length ≤ 2 and stopwords are dropped.
func (kc KeywordConfig) TopTopics(titles []string) TopicStats {
	stop := make(map[string]struct{}, len(kc.Stopwords))
	for _, w := range kc.Stopwords {
		stop[w] = struct{}{}
	}

	counts := make(map[string]int)
	var order []string
	total := 0
	for _, title := range titles {
		for _, tok := range titleTokenRE.FindAllString(strings.ToLower(title), -1) {
			if len(tok) < minTopicLen {
				continue
			}
			if _, skip := stop[tok]; skip {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
			total++
		}
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > topTopicsLimit {
		ranked = ranked[:topTopicsLimit]
	}

	return TopicStats{
		Topics:       ranked,
		UniqueTokens: len(order),
		TotalTokens:  total,
	}
}

// KeywordCount pairs a keyword with the number of videos whose
// description contains it.
type KeywordCount struct {
	Keyword string
	Count   int
}

// DescriptionScan is the result of scanning all video descriptions
// against the CTA, monetization and community keyword lists.
type DescriptionScan struct {
	// CTA and Monetization hold per-keyword video counts in keyword-list
	// order, including zero counts.
	CTA          []KeywordCount
	Monetization []KeywordCount
	// CommunityVideos counts videos containing at least one community
	// keyword.
	CommunityVideos int
}

// ScanDescriptions performs case-insensitive substring matching of the
// three keyword lists against each description. Multi-word keywords
// match as substrings, not token sequences, and each keyword counts at
// most once per video.
func (kc KeywordConfig) ScanDescriptions(descriptions []string) DescriptionScan {
	scan := DescriptionScan{
		CTA:          make([]KeywordCount, len(kc.CTA)),
		Monetization: make([]KeywordCount, len(kc.Monetization)),
	}
	for i, kw := range kc.CTA {
		scan.CTA[i].Keyword = kw
	}
	for i, kw := range kc.Monetization {
		scan.Monetization[i].Keyword = kw
	}

	for _, desc := range descriptions {
		d := strings.ToLower(desc)
		for i, kw := range kc.CTA {
			if strings.Contains(d, kw) {
				scan.CTA[i].Count++
			}
		}
		for i, kw := range kc.Monetization {
			if strings.Contains(d, kw) {
				scan.Monetization[i].Count++
			}
		}
		hasCommunity := false
		for _, kw := range kc.Community {
			if strings.Contains(d, kw) {
				hasCommunity = true
				break
			}
		}
		if hasCommunity {
			scan.CommunityVideos++
		}
	}
	return scan
}

// topCounts returns the up-to-n highest counts, descending, zero counts
// dropped, ties kept in keyword-list order.
func topCounts(counts []KeywordCount, n int) []KeywordCount {
	nonzero := make([]KeywordCount, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			nonzero = append(nonzero, c)
		}
	}
	sort.SliceStable(nonzero, func(i, j int) bool {
		return nonzero[i].Count > nonzero[j].Count
	})
	if len(nonzero) > n {
		nonzero = nonzero[:n]
	}
	return nonzero
}

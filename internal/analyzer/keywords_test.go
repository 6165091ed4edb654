package analyzer

import (
	"reflect"
	"testing"
)

func TestTopTopicsFiltering(t *testing.T) {
	kc := DefaultKeywordConfig()
	titles := []string{
		"Learn Go for beginners",  // "learn", "for" are stopwords, "go" too short
		"Go generics explained",   // "go" too short again
		"Generics in practice",    // "in" stopword
	}

	stats := kc.TopTopics(titles)

	want := []string{"beginners", "generics", "explained", "practice"}
	// "generics" appears twice so it ranks first.
	if stats.Topics[0] != "generics" {
		t.Errorf("top topic = %q, want %q", stats.Topics[0], "generics")
	}
	if len(stats.Topics) != len(want) {
		t.Errorf("topics = %v, want %d entries", stats.Topics, len(want))
	}
	if stats.TotalTokens != 5 {
		t.Errorf("total tokens = %d, want 5", stats.TotalTokens)
	}
	if stats.UniqueTokens != 4 {
		t.Errorf("unique tokens = %d, want 4", stats.UniqueTokens)
	}
}

func TestTopTopicsTieOrderIsFirstSeen(t *testing.T) {
	kc := DefaultKeywordConfig()
	stats := kc.TopTopics([]string{"alpha bravo", "bravo alpha", "charlie"})

	// alpha and bravo both have count 2; alpha was seen first.
	want := []string{"alpha", "bravo", "charlie"}
	if !reflect.DeepEqual(stats.Topics, want) {
		t.Errorf("topics = %v, want %v", stats.Topics, want)
	}
}

func TestTopTopicsSpecialCharacters(t *testing.T) {
	kc := DefaultKeywordConfig()
	stats := kc.TopTopics([]string{"C# and C++ crash-course"})

	found := map[string]bool{}
	for _, topic := range stats.Topics {
		found[topic] = true
	}
	// Tokens are runs of [A-Za-z0-9+#]: c# and c++ survive as-is,
	// "crash-course" splits on the hyphen.
	for _, want := range []string{"c++", "crash", "course"} {
		if !found[want] {
			t.Errorf("topics %v missing %q", stats.Topics, want)
		}
	}
	if found["c#"] {
		// "c#" is length 2, dropped by the length filter.
		t.Errorf("topics %v should not contain %q", stats.Topics, "c#")
	}
}

func TestTopTopicsLimit(t *testing.T) {
	kc := DefaultKeywordConfig()
	var titles []string
	for _, w := range []string{
		"apple", "banana", "cherry", "damson", "elderberry", "feijoa",
		"grape", "honeydew", "jackfruit", "kiwi", "lemon", "mango",
		"nectarine", "orange", "papaya", "quince", "raspberry",
		"strawberry", "tangerine", "ugli", "vanilla", "watermelon",
	} {
		titles = append(titles, w)
	}

	stats := kc.TopTopics(titles)
	if len(stats.Topics) != topTopicsLimit {
		t.Errorf("topics length = %d, want %d", len(stats.Topics), topTopicsLimit)
	}
}

func TestScanDescriptionsCountsPerVideo(t *testing.T) {
	kc := DefaultKeywordConfig()
	descs := []string{
		"Subscribe and subscribe again! Link in description below.",
		"subscribe to the channel",
		"nothing relevant here",
	}

	scan := kc.ScanDescriptions(descs)

	counts := map[string]int{}
	for _, c := range scan.CTA {
		counts[c.Keyword] = c.Count
	}
	// Each keyword counts at most once per video.
	if counts["subscribe"] != 2 {
		t.Errorf("subscribe count = %d, want 2", counts["subscribe"])
	}
	if counts["link in description"] != 1 {
		t.Errorf("link in description count = %d, want 1 (substring match)", counts["link in description"])
	}
}

func TestScanDescriptionsCommunityPresence(t *testing.T) {
	kc := DefaultKeywordConfig()
	descs := []string{
		"Join our Discord and our newsletter",
		"discord only",
		"plain description",
	}

	scan := kc.ScanDescriptions(descs)
	// Two of three videos mention at least one community keyword; the
	// first counts once despite matching two keywords.
	if scan.CommunityVideos != 2 {
		t.Errorf("community videos = %d, want 2", scan.CommunityVideos)
	}
}

func TestScanDescriptionsCustomConfig(t *testing.T) {
	kc := KeywordConfig{
		CTA:          []string{"smash"},
		Monetization: []string{"shop"},
		Community:    []string{"guild"},
	}
	scan := kc.ScanDescriptions([]string{"Smash that button, visit the SHOP, join the guild"})

	if scan.CTA[0].Count != 1 {
		t.Errorf("custom CTA count = %d, want 1", scan.CTA[0].Count)
	}
	if scan.Monetization[0].Count != 1 {
		t.Errorf("custom monetization count = %d, want 1", scan.Monetization[0].Count)
	}
	if scan.CommunityVideos != 1 {
		t.Errorf("custom community videos = %d, want 1", scan.CommunityVideos)
	}
}

func TestTopCounts(t *testing.T) {
	counts := []KeywordCount{
		{"a", 0},
		{"b", 3},
		{"c", 3},
		{"d", 5},
	}

	got := topCounts(counts, 2)
	if len(got) != 2 || got[0].Keyword != "d" || got[1].Keyword != "b" {
		t.Errorf("topCounts = %v, want d then b (tie keeps list order, zeros dropped)", got)
	}
}

package quizbank

// Category names. These are the persisted identifiers in DailyStats, so
// they must stay stable.
const (
	CategoryVocab     = "vocab"
	CategoryReorder   = "reorder"
	CategorySpelling  = "spelling"
	CategoryDialogue  = "dialogue"
	CategoryQuestions = "questions"
	CategoryGrammar   = "grammar"
)

// CategoryOrder is the menu display order.
var CategoryOrder = []string{
	CategoryVocab,
	CategoryReorder,
	CategorySpelling,
	CategoryDialogue,
	CategoryQuestions,
	CategoryGrammar,
}

// CategoryTitle maps a category to its menu label.
var CategoryTitle = map[string]string{
	CategoryVocab:     "たんご (Words)",
	CategoryReorder:   "ならべかえ (Reorder)",
	CategorySpelling:  "スペル (Spelling)",
	CategoryDialogue:  "あいさつ (Dialogue)",
	CategoryQuestions: "ぎもんし (Questions)",
	CategoryGrammar:   "ぶんぽう (Grammar)",
}

// Bank is the read-only question bank with precomputed indices.
type Bank struct {
	categories map[string][]Question
	byID       map[string]*Question
}

// New builds a Bank from per-category question lists. It validates the data
// and returns an error describing the first defect found.
func New(categories map[string][]Question) (*Bank, error) {
	if err := validate(categories); err != nil {
		return nil, err
	}

	b := &Bank{
		categories: categories,
		byID:       make(map[string]*Question),
	}
	for cat := range categories {
		qs := categories[cat]
		for i := range qs {
			b.byID[qs[i].ID] = &qs[i]
		}
	}
	return b, nil
}

// Category returns a copy of the question list for a category. The copy is
// the caller's to shuffle. An unknown or empty category yields nil.
func (b *Bank) Category(name string) []Question {
	qs := b.categories[name]
	if len(qs) == 0 {
		return nil
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Lookup finds a question by id.
func (b *Bank) Lookup(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Resolve maps ids to questions, preserving input order. Ids no longer in
// the bank are dropped silently; a stale review queue must never crash the
// selector.
func (b *Bank) Resolve(ids []string) []Question {
	var out []Question
	for _, id := range ids {
		if q, ok := b.byID[id]; ok {
			out = append(out, *q)
		}
	}
	return out
}

// Len returns the total number of questions across all categories.
func (b *Bank) Len() int {
	return len(b.byID)
}

package stats

import "encoding/json"

// Ledger persists the serialized stats record. Load returns (nil, nil) when
// nothing has been stored yet.
type Ledger interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store owns the ledger. Single writer, single reader: it loads once at
// construction and persists the full record synchronously after every
// mutation.
type Store struct {
	ledger  Ledger
	current Stats
}

// NewStore loads the persisted ledger through l. Loading never fails the
// caller: absent or malformed bytes yield a fresh zeroed ledger, and legacy
// encodings are migrated in place.
func NewStore(l Ledger) *Store {
	st := &Store{ledger: l}
	st.current = st.load()
	return st
}

// Current returns a copy of the ledger.
func (st *Store) Current() Stats {
	return st.current.Clone()
}

// Mutate applies fn to a copy of the ledger, installs the result, and
// persists it. fn must be pure; callers never read-modify-write directly.
// The returned Stats is the post-mutation ledger even when persistence
// fails.
func (st *Store) Mutate(fn func(Stats) Stats) (Stats, error) {
	next := fn(st.current.Clone())
	st.current = next

	data, err := json.Marshal(next)
	if err != nil {
		return next.Clone(), err
	}
	if err := st.ledger.Save(data); err != nil {
		return next.Clone(), err
	}
	return next.Clone(), nil
}

func (st *Store) load() Stats {
	data, err := st.ledger.Load()
	if err != nil || len(data) == 0 {
		return New()
	}
	return Decode(data)
}

// rawStats mirrors Stats but defers activity-log entries so legacy boolean
// values can be detected.
type rawStats struct {
	TotalAnswered int                        `json:"totalAnswered"`
	TotalCorrect  int                        `json:"totalCorrect"`
	ActivityLog   map[string]json.RawMessage `json:"activityLog"`
	ReviewList    []string                   `json:"reviewList"`
	WeakTags      map[string]int             `json:"weakTags"`
}

// Decode parses persisted ledger bytes, migrating legacy encodings. It
// never returns an error: undecodable bytes yield a fresh ledger.
//
// The legacy activity log stored a bare boolean per date ("played that
// day"). true maps to a full 30-question day (answered=30, correct=30),
// false to an all-zero day. That exact mapping is how previously-persisted
// records were upgraded, so it must not change.
func Decode(data []byte) Stats {
	var raw rawStats
	if err := json.Unmarshal(data, &raw); err != nil {
		return New()
	}

	out := New()
	out.TotalAnswered = raw.TotalAnswered
	out.TotalCorrect = raw.TotalCorrect
	out.ReviewList = raw.ReviewList

	for date, entry := range raw.ActivityLog {
		var day DailyStats
		if err := json.Unmarshal(entry, &day); err == nil {
			out.ActivityLog[date] = day
			continue
		}
		var played bool
		if err := json.Unmarshal(entry, &played); err == nil {
			if played {
				out.ActivityLog[date] = DailyStats{Answered: 30, Correct: 30, Categories: []string{}}
			} else {
				out.ActivityLog[date] = DailyStats{Categories: []string{}}
			}
			continue
		}
		// Neither shape: drop the entry rather than fail the load.
	}

	for tag, n := range raw.WeakTags {
		out.WeakTags[tag] = n
	}
	return out
}

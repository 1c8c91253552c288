package stats

import "fmt"

// adviceThreshold is the miss count at which a tag earns topic-specific
// coaching instead of the generic line.
const adviceThreshold = 3

// genericAdvice is shown while no tag has enough misses to coach on.
const genericAdvice = "きょうも 3つのスタンプ あつめよう！"

// adviceMessages maps a weak tag to its canned encouragement.
var adviceMessages = map[string]string{
	"animal":   "どうぶつ博士(はかせ) に なろう！",
	"food":     "たべものマスター をめざそう！",
	"number":   "すうじ に チャレンジ！",
	"color":    "いろ を 英語(えいご)で いえるかな？",
	"school":   "がっこうの タンゴを おぼえよう！",
	"grammar":  "ぶんぽう が わかると かっこいい！",
	"be-verb":  "beどうし を マスターしよう！",
	"can-verb": "「できる(can)」を つかってみよう！",
	"who":      "「だれ(Who)」か わかるかな？",
	"where":    "「どこ(Where)」か きいてみよう！",
	"when":     "「いつ(When)」か わかるかな？",
	"what":     "「なに(What)」か こたえられる？",
	"greeting": "げんきに あいさつ してみよう！",
	"reorder":  "ならべかえ を とくい にしよう！",
}

// TagWeakness sums the miss counts for the given tags. Zero for an empty
// tag set or tags never missed.
func TagWeakness(weakTags map[string]int, tags []string) int {
	total := 0
	for _, t := range tags {
		total += weakTags[t]
	}
	return total
}

// Advice picks the coaching line for the home screen: topic-specific once
// the learner's worst tag reaches the threshold, generic encouragement
// before that. Pure; no side effects.
func Advice(s Stats) string {
	worstTag := ""
	worstCount := 0
	for tag, n := range s.WeakTags {
		// Ties break toward the lexicographically smaller tag so the
		// message is stable between renders.
		if n > worstCount || (n == worstCount && worstTag != "" && tag < worstTag) {
			worstTag = tag
			worstCount = n
		}
	}

	if worstCount < adviceThreshold {
		return genericAdvice
	}
	if msg, ok := adviceMessages[worstTag]; ok {
		return msg
	}
	return fmt.Sprintf("「%s」に チャレンジ！", worstTag)
}

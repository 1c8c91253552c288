package quizbank

// Seed data for the built-in Eiken grade-5 bank. Prompts are the Japanese
// the learner sees; answers are the English being drilled.

// seedVocab: pick the English word for the Japanese prompt.
var seedVocab = []Question{
	{
		ID: "v1", Kind: KindChoice, Tags: []string{"animal"},
		Prompt:      "「いぬ」は えいごで？",
		Choices:     []string{"dog", "cat", "bird", "fish"},
		Correct:     0,
		Answer:      "dog",
		Translation: "いぬ",
		Explanation: "dog は「いぬ」。d-o-g と おぼえよう。",
	},
	{
		ID: "v2", Kind: KindChoice, Tags: []string{"animal"},
		Prompt:      "「うさぎ」は えいごで？",
		Choices:     []string{"bear", "rabbit", "horse", "mouse"},
		Correct:     1,
		Answer:      "rabbit",
		Translation: "うさぎ",
		Explanation: "rabbit は「うさぎ」。b が ふたつ あるよ。",
	},
	{
		ID: "v3", Kind: KindChoice, Tags: []string{"food"},
		Prompt:      "「りんご」は えいごで？",
		Choices:     []string{"orange", "grape", "apple", "peach"},
		Correct:     2,
		Answer:      "apple",
		Translation: "りんご",
		Explanation: "apple は「りんご」。まいにち ひとつ たべよう。",
	},
	{
		ID: "v4", Kind: KindChoice, Tags: []string{"food"},
		Prompt:      "「たまご」は えいごで？",
		Choices:     []string{"egg", "milk", "rice", "bread"},
		Correct:     0,
		Answer:      "egg",
		Translation: "たまご",
		Explanation: "egg は「たまご」。g が ふたつ。",
	},
	{
		ID: "v5", Kind: KindChoice, Tags: []string{"color"},
		Prompt:      "「あか」は えいごで？",
		Choices:     []string{"blue", "red", "green", "yellow"},
		Correct:     1,
		Answer:      "red",
		Translation: "あか",
		Explanation: "red は「あか」。りんごの いろ！",
	},
	{
		ID: "v6", Kind: KindChoice, Tags: []string{"color"},
		Prompt:      "「みどり」は えいごで？",
		Choices:     []string{"green", "black", "white", "pink"},
		Correct:     0,
		Answer:      "green",
		Translation: "みどり",
		Explanation: "green は「みどり」。はっぱの いろ。",
	},
	{
		ID: "v7", Kind: KindChoice, Tags: []string{"number"},
		Prompt:      "「8 (はち)」は えいごで？",
		Choices:     []string{"six", "seven", "eight", "nine"},
		Correct:     2,
		Answer:      "eight",
		Translation: "8 (はち)",
		Explanation: "eight は「8」。gh は よまないよ。",
	},
	{
		ID: "v8", Kind: KindChoice, Tags: []string{"number"},
		Prompt:      "「12 (じゅうに)」は えいごで？",
		Choices:     []string{"twenty", "twelve", "ten", "two"},
		Correct:     1,
		Answer:      "twelve",
		Translation: "12 (じゅうに)",
		Explanation: "twelve は「12」。twenty (20) と まちがえないでね。",
	},
	{
		ID: "v9", Kind: KindChoice, Tags: []string{"school"},
		Prompt:      "「えんぴつ」は えいごで？",
		Choices:     []string{"pen", "eraser", "notebook", "pencil"},
		Correct:     3,
		Answer:      "pencil",
		Translation: "えんぴつ",
		Explanation: "pencil は「えんぴつ」。pen は ボールペンだよ。",
	},
	{
		ID: "v10", Kind: KindChoice, Tags: []string{"school"},
		Prompt:      "「つくえ」は えいごで？",
		Choices:     []string{"desk", "chair", "door", "window"},
		Correct:     0,
		Answer:      "desk",
		Translation: "つくえ",
		Explanation: "desk は「つくえ」。chair は「いす」。",
	},
}

// seedReorder: rebuild the sentence from shuffled tokens. Tokens are listed
// in canonical order; terminal punctuation is its own token.
var seedReorder = []Question{
	{
		ID: "r1", Kind: KindReorder, Tags: []string{"reorder", "be-verb"},
		Prompt:      "「わたしは がくせいです」",
		Tokens:      []string{"I", "am", "a", "student", "."},
		Answer:      "I am a student.",
		Translation: "わたしは がくせいです。",
		Explanation: "「わたしは〜です」は I am 〜 の じゅんばん。",
	},
	{
		ID: "r2", Kind: KindReorder, Tags: []string{"reorder", "animal"},
		Prompt:      "「わたしは ねこが すきです」",
		Tokens:      []string{"I", "like", "cats", "."},
		Answer:      "I like cats.",
		Translation: "わたしは ねこが すきです。",
		Explanation: "すきなものは like のあとに おくよ。",
	},
	{
		ID: "r3", Kind: KindReorder, Tags: []string{"reorder", "be-verb"},
		Prompt:      "「これは わたしの ほんです」",
		Tokens:      []string{"This", "is", "my", "book", "."},
		Answer:      "This is my book.",
		Translation: "これは わたしの ほんです。",
		Explanation: "This is 〜 で「これは〜です」。",
	},
	{
		ID: "r4", Kind: KindReorder, Tags: []string{"reorder", "can-verb"},
		Prompt:      "「わたしは およげます」",
		Tokens:      []string{"I", "can", "swim", "."},
		Answer:      "I can swim.",
		Translation: "わたしは およげます。",
		Explanation: "できることは can + どうし。",
	},
	{
		ID: "r5", Kind: KindReorder, Tags: []string{"reorder", "what"},
		Prompt:      "「これは なんですか？」",
		Tokens:      []string{"What", "is", "this", "?"},
		Answer:      "What is this?",
		Translation: "これは なんですか？",
		Explanation: "しつもんは What を さきに。さいごは ? だよ。",
	},
	{
		ID: "r6", Kind: KindReorder, Tags: []string{"reorder", "where"},
		Prompt:      "「わたしの ぼうしは どこですか？」",
		Tokens:      []string{"Where", "is", "my", "cap", "?"},
		Answer:      "Where is my cap?",
		Translation: "わたしの ぼうしは どこですか？",
		Explanation: "ばしょを きくときは Where から はじめよう。",
	},
	{
		ID: "r7", Kind: KindReorder, Tags: []string{"reorder", "grammar"},
		Prompt:      "「かれは まいにち テニスをします」",
		Tokens:      []string{"He", "plays", "tennis", "every", "day", "."},
		Answer:      "He plays tennis every day.",
		Translation: "かれは まいにち テニスをします。",
		Explanation: "He のときは plays。s を わすれずに。",
	},
	{
		ID: "r8", Kind: KindReorder, Tags: []string{"reorder", "can-verb"},
		Prompt:      "「あなたは ピアノを ひけますか？」",
		Tokens:      []string{"Can", "you", "play", "the", "piano", "?"},
		Answer:      "Can you play the piano?",
		Translation: "あなたは ピアノを ひけますか？",
		Explanation: "しつもんの can は ぶんの さきとうに でるよ。",
	},
}

// seedSpelling: type the English word for the Japanese prompt.
var seedSpelling = []Question{
	{
		ID: "s1", Kind: KindSpelling, Tags: []string{"animal"},
		Prompt:      "「ねこ」を えいごで かいてみよう",
		Answer:      "cat",
		Translation: "ねこ",
		Explanation: "c-a-t で cat。",
	},
	{
		ID: "s2", Kind: KindSpelling, Tags: []string{"animal"},
		Prompt:      "「いぬ」を えいごで かいてみよう",
		Answer:      "dog",
		Translation: "いぬ",
		Explanation: "d-o-g で dog。",
	},
	{
		ID: "s3", Kind: KindSpelling, Tags: []string{"food"},
		Prompt:      "「ぎゅうにゅう」を えいごで かいてみよう",
		Answer:      "milk",
		Translation: "ぎゅうにゅう",
		Explanation: "m-i-l-k で milk。",
	},
	{
		ID: "s4", Kind: KindSpelling, Tags: []string{"color"},
		Prompt:      "「あお」を えいごで かいてみよう",
		Answer:      "blue",
		Translation: "あお",
		Explanation: "b-l-u-e。さいごの e を わすれずに。",
	},
	{
		ID: "s5", Kind: KindSpelling, Tags: []string{"number"},
		Prompt:      "「10 (じゅう)」を えいごで かいてみよう",
		Answer:      "ten",
		Translation: "10 (じゅう)",
		Explanation: "t-e-n で ten。",
	},
	{
		ID: "s6", Kind: KindSpelling, Tags: []string{"school"},
		Prompt:      "「ほん」を えいごで かいてみよう",
		Answer:      "book",
		Translation: "ほん",
		Explanation: "b-o-o-k。o が ふたつ。",
	},
	{
		ID: "s7", Kind: KindSpelling, Tags: []string{"school"},
		Prompt:      "「がっこう」を えいごで かいてみよう",
		Answer:      "school",
		Translation: "がっこう",
		Explanation: "s-c-h-o-o-l。ch の かたちに ちゅうい。",
	},
	{
		ID: "s8", Kind: KindSpelling, Tags: []string{"greeting"},
		Prompt:      "「こんにちは」を えいごで かいてみよう",
		Answer:      "hello",
		Translation: "こんにちは",
		Explanation: "h-e-l-l-o。l が ふたつ。",
	},
}

// seedDialogue: pick the natural reply.
var seedDialogue = []Question{
	{
		ID: "d1", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "\"Good morning!\" と いわれたら？",
		Choices:     []string{"Good morning!", "Good night.", "Goodbye.", "Thank you."},
		Correct:     0,
		Answer:      "Good morning!",
		Translation: "おはよう！",
		Explanation: "あさの あいさつには おなじく Good morning! と かえそう。",
	},
	{
		ID: "d2", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "\"How are you?\" と きかれたら？",
		Choices:     []string{"I'm ten.", "I'm fine, thank you.", "See you.", "Yes, please."},
		Correct:     1,
		Answer:      "I'm fine, thank you.",
		Translation: "げんきです、ありがとう。",
		Explanation: "How are you? は「げんき？」。I'm fine で こたえよう。",
	},
	{
		ID: "d3", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "\"Thank you.\" と いわれたら？",
		Choices:     []string{"Here you are.", "I'm sorry.", "You're welcome.", "Me too."},
		Correct:     2,
		Answer:      "You're welcome.",
		Translation: "どういたしまして。",
		Explanation: "ありがとうには You're welcome.「どういたしまして」。",
	},
	{
		ID: "d4", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "\"Nice to meet you.\" と いわれたら？",
		Choices:     []string{"Nice to meet you, too.", "Good night.", "Excuse me.", "That's all."},
		Correct:     0,
		Answer:      "Nice to meet you, too.",
		Translation: "こちらこそ はじめまして。",
		Explanation: "too を つけて「こちらこそ」と かえすよ。",
	},
	{
		ID: "d5", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "でんわで「もしもし」は？",
		Choices:     []string{"Hello?", "Welcome!", "Really?", "Sure."},
		Correct:     0,
		Answer:      "Hello?",
		Translation: "もしもし。",
		Explanation: "でんわの もしもしも Hello? で OK。",
	},
	{
		ID: "d6", Kind: KindChoice, Tags: []string{"greeting"},
		Prompt:      "\"Do you like music?\" と きかれて「はい」なら？",
		Choices:     []string{"No, I don't.", "Yes, I do.", "Yes, I am.", "No, thank you."},
		Correct:     1,
		Answer:      "Yes, I do.",
		Translation: "はい、すきです。",
		Explanation: "Do you 〜? には do で こたえる。am じゃないよ。",
	},
}

// seedQuestions: question words.
var seedQuestions = []Question{
	{
		ID: "q1", Kind: KindChoice, Tags: []string{"what"},
		Prompt:      "( ) is your name? — My name is Ken.",
		Choices:     []string{"What", "Who", "Where", "When"},
		Correct:     0,
		Translation: "あなたの なまえは なんですか？",
		Explanation: "なまえ (なに) を きくときは What。",
	},
	{
		ID: "q2", Kind: KindChoice, Tags: []string{"who"},
		Prompt:      "( ) is that boy? — He is my brother.",
		Choices:     []string{"What", "Who", "Where", "How"},
		Correct:     1,
		Translation: "あの おとこのこは だれですか？",
		Explanation: "ひと (だれ) を きくときは Who。",
	},
	{
		ID: "q3", Kind: KindChoice, Tags: []string{"where"},
		Prompt:      "( ) is my bag? — It's on the desk.",
		Choices:     []string{"When", "Who", "Where", "What"},
		Correct:     2,
		Translation: "わたしの かばんは どこですか？",
		Explanation: "ばしょ (どこ) を きくときは Where。",
	},
	{
		ID: "q4", Kind: KindChoice, Tags: []string{"when"},
		Prompt:      "( ) is your birthday? — It's May 5th.",
		Choices:     []string{"When", "Where", "Who", "What"},
		Correct:     0,
		Translation: "あなたの たんじょうびは いつですか？",
		Explanation: "とき (いつ) を きくときは When。",
	},
	{
		ID: "q5", Kind: KindChoice, Tags: []string{"what"},
		Prompt:      "( ) time is it? — It's three o'clock.",
		Choices:     []string{"What", "When", "Who", "Where"},
		Correct:     0,
		Translation: "いま なんじですか？",
		Explanation: "じかんは What time で きくよ。",
	},
	{
		ID: "q6", Kind: KindChoice, Tags: []string{"where"},
		Prompt:      "( ) do you play soccer? — In the park.",
		Choices:     []string{"Who", "What", "When", "Where"},
		Correct:     3,
		Translation: "どこで サッカーを しますか？",
		Explanation: "In the park (こうえんで) と こたえているから Where。",
	},
}

// seedGrammar: be-verbs and can.
var seedGrammar = []Question{
	{
		ID: "g1", Kind: KindChoice, Tags: []string{"grammar", "be-verb"},
		Prompt:      "I ( ) a student.",
		Choices:     []string{"am", "is", "are", "do"},
		Correct:     0,
		Translation: "わたしは がくせいです。",
		Explanation: "I には いつも am。",
	},
	{
		ID: "g2", Kind: KindChoice, Tags: []string{"grammar", "be-verb"},
		Prompt:      "You ( ) my friend.",
		Choices:     []string{"am", "is", "are", "does"},
		Correct:     2,
		Translation: "あなたは わたしの ともだちです。",
		Explanation: "You には are。",
	},
	{
		ID: "g3", Kind: KindChoice, Tags: []string{"grammar", "be-verb"},
		Prompt:      "This ( ) my pen.",
		Choices:     []string{"are", "is", "am", "be"},
		Correct:     1,
		Translation: "これは わたしの ペンです。",
		Explanation: "This / He / She には is。",
	},
	{
		ID: "g4", Kind: KindChoice, Tags: []string{"grammar", "can-verb"},
		Prompt:      "I ( ) play the guitar.",
		Choices:     []string{"can", "is", "am", "do"},
		Correct:     0,
		Translation: "わたしは ギターが ひけます。",
		Explanation: "「できる」は can + どうし。",
	},
	{
		ID: "g5", Kind: KindChoice, Tags: []string{"grammar", "can-verb"},
		Prompt:      "She can ( ) fast.",
		Choices:     []string{"runs", "running", "run", "ran"},
		Correct:     2,
		Translation: "かのじょは はやく はしれます。",
		Explanation: "can のあとの どうしは もとの かたち。",
	},
	{
		ID: "g6", Kind: KindChoice, Tags: []string{"grammar"},
		Prompt:      "Ken ( ) soccer every Sunday.",
		Choices:     []string{"play", "plays", "playing", "played"},
		Correct:     1,
		Translation: "ケンは まいしゅう にちようびに サッカーをします。",
		Explanation: "Ken (= he) のときは plays。",
	},
}

// defaultBank is the built-in bank, validated at startup. A failure here is
// a seed-data bug.
var defaultBank *Bank

func init() {
	b, err := New(map[string][]Question{
		CategoryVocab:     seedVocab,
		CategoryReorder:   seedReorder,
		CategorySpelling:  seedSpelling,
		CategoryDialogue:  seedDialogue,
		CategoryQuestions: seedQuestions,
		CategoryGrammar:   seedGrammar,
	})
	if err != nil {
		panic("quizbank: invalid seed data: " + err.Error())
	}
	defaultBank = b
}

// Default returns the built-in bank.
func Default() *Bank {
	return defaultBank
}

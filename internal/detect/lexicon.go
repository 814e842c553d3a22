package detect

import "regexp"

// Lexicon holds the immutable vocabulary tables used by the heuristic
// scorers and the dialogue filter. A Lexicon is injected at construction
// so concurrent runs can use different vocabularies without cross-talk.
type Lexicon struct {
	// Keywords is the chapter-transition vocabulary scored by the
	// semantic detector, grouped here as a flat list of distinct terms.
	Keywords []string

	// TimePatterns match date/day/season/time-of-day expressions.
	TimePatterns []*regexp.Regexp

	// PlaceKeywords are locative cues (particles and common places).
	PlaceKeywords []string

	// DecorativeGlyphs are ornament characters that often mark titles.
	DecorativeGlyphs string

	// QuoteGlyphs are every quote character counted by the dialogue
	// filter, ASCII and typographic.
	QuoteGlyphs string

	// QuotePairs are (open, close) quote pairs that fully wrap a
	// dialogue line.
	QuotePairs [][2]rune

	// DialoguePrefixes match dialogue openings such as `이름: "대사"`.
	DialoguePrefixes []*regexp.Regexp

	// DialogueEndings are reporting-verb suffixes such as "라고 말했다".
	DialogueEndings []string
}

// DefaultLexicon returns the built-in Korean prose vocabulary.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Keywords: []string{
			// states and transitions
			"시작", "끝", "마지막", "처음", "새로운", "다시", "또다시",
			"만남", "이별", "결정", "선택", "기회", "위기", "변화",
			// actions
			"떠나다", "도착", "출발", "돌아오다", "찾아가다", "만나다",
			"싸우다", "도전", "시도", "실패", "성공", "깨달음",
			// temporal markers
			"그날", "오늘", "내일", "어제", "나중에", "드디어", "마침내",
			"갑자기", "결국", "하지만", "그러나", "한편", "이때",
			// relational and dialogue-topic nouns
			"대화", "약속", "계획", "비밀", "진실", "거짓", "오해",
			"화해", "고백", "결혼", "이혼", "친구", "적", "동료",
		},
		TimePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d+년\s*\d*월?\s*\d*일?`),
			regexp.MustCompile(`(아침|점심|저녁|밤|새벽)`),
			regexp.MustCompile(`(월요일|화요일|수요일|목요일|금요일|토요일|일요일)`),
			regexp.MustCompile(`(봄|여름|가을|겨울)`),
		},
		PlaceKeywords: []string{
			"에서", "에게", "로부터", "까지", "집", "학교", "회사", "카페",
		},
		DecorativeGlyphs: "◆★※■□▲▼◇○●",
		QuoteGlyphs:      `"'“”‘’`,
		QuotePairs: [][2]rune{
			{'"', '"'},
			{'\'', '\''},
			{'“', '”'},
			{'‘', '’'},
		},
		DialoguePrefixes: []*regexp.Regexp{
			regexp.MustCompile(`^"[^"]*"`),
			regexp.MustCompile(`^'[^']*'`),
			regexp.MustCompile(`[가-힣]+\s*:\s*["'“‘]`),
			regexp.MustCompile(`[가-힣]+이\s*(말했다|대답했다|물었다|외쳤다)`),
		},
		DialogueEndings: []string{
			"라고 말했다", "라고 대답했다", "라고 물었다", "라고 외쳤다",
			"고 말했다", "고 대답했다", "고 물었다", "고 외쳤다",
			"하며 말했다", "하며 웃었다", "하며 고개를",
		},
	}
}

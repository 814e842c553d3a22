package patterns

// Builtin returns the default chapter pattern set for Korean web-novel
// text dumps. Priorities follow table order; lower numbers are tried
// first. Users typically enable a subset per book via configuration.
func Builtin() []Raw {
	return []Raw{
		{Priority: 1, Name: "regex 01", Example: "[1화]", Pattern: `(.+\d+화.)`},
		{Priority: 2, Name: "regex 02", Example: "005. 가나다라 1", Pattern: `(^[0-9]{3,}[.]\s.*.[0-9]$)`},
		{Priority: 3, Name: "regex 03", Example: "0001 / 1050 ──────────", Pattern: `(^[0-9]{4,})(\s[/]\s[0-9]{4,}...........)`},
		{Priority: 4, Name: "regex 04", Example: "2화 가나다라 (1)", Pattern: `(^[0-9]+화.*)`},
		{Priority: 5, Name: "regex 05", Example: "< 가나다라 >", Pattern: `(<.*>)$`},
		{Priority: 6, Name: "regex 06", Example: "#1화 가나다라", Pattern: `^#\d+.*`},
		{Priority: 7, Name: "regex 07", Example: "54. 가나다라", Pattern: `(\d+\.\s+.+)`},
		{Priority: 8, Name: "regex 08", Example: "#50. 가나다라(3)", Pattern: `(#+\d+\.\s+.+)`},
		{Priority: 9, Name: "regex 09", Example: "제1장 가나다라", Pattern: `^제\d+장\s+.*`},
		{Priority: 10, Name: "regex 10", Example: "1", Pattern: `^\d+$`},
		{Priority: 11, Name: "regex 11", Example: "제 1화. 시작", Pattern: `제\s*\d+화\.\s*[^\n]+`},
		{Priority: 12, Name: "regex 12", Example: "외전 1화 - 가나다라 (2)", Pattern: `외전\s*\d+화\s*[-–]\s*[^\n]+`},
		{Priority: 13, Name: "regex 13", Example: "=-=-=-=", Pattern: `=-=-=-=`},
		{Priority: 14, Name: "regex 14", Example: "00001", Pattern: `\b\d{5}\b`},
		{Priority: 15, Name: "regex 15", Example: "00001 1화", Pattern: `\b\d{5}\s\d+화`},
		{Priority: 16, Name: "regex 16", Example: "00001 1화 닥터최태수", Pattern: `\b\d{5}\s*\d+화`},
		{Priority: 17, Name: "regex 17", Example: "1화 닥터최태수", Pattern: `\d+화`},
		{Priority: 18, Name: "regex 18", Example: "2부 123화 가나다라", Pattern: `[0-9]+부\s[0-9]+화\s[^\n]+`},
		{Priority: 19, Name: "regex 19", Example: "외전 1화", Pattern: `외전\s*\d+화`},
		{Priority: 20, Name: "regex 20", Example: "<1화> 미 국세청 범죄수사국의 검은머리 요원", Pattern: `^<\d+화>.+$`},
		{Priority: 21, Name: "regex 21", Example: "<천하제일 곤륜객잔 1권 1화>", Pattern: `<천하제일 곤륜객잔 \d+권 \d+화>`},
		{Priority: 22, Name: "regex 22", Example: "대한민국 절대 재벌! 1화", Pattern: `대한민국 절대 재벌! \d{1,3}화`},
		{Priority: 23, Name: "regex 23", Example: "< 001 : 프롤로그 >", Pattern: `< \d{3} : .+ >$`},
		{Priority: 24, Name: "regex 24", Example: "524 : 대한민국의 방패", Pattern: `^\d{3} : .+$`},
		{Priority: 25, Name: "regex 25", Example: "1편. 청동기 시대에서의 삶", Pattern: `^(?:외전\s*)?\d+편\.\s+.+$`},
		{Priority: 26, Name: "regex 26", Example: "천마는 조용히 살고싶다-1화", Pattern: `천마는 조용히 살고싶다-\d{1,3}화`},
		{Priority: 27, Name: "regex 27", Example: "01-천산의 객잔?", Pattern: `^\d{1,3}-(.*)$`},
		{Priority: 28, Name: "regex 28", Example: "외전-", Pattern: `외전-(.*)$`},
		{Priority: 29, Name: "regex 29", Example: "제1편 시작", Pattern: `제\d+편\s+.*`},
		{Priority: 30, Name: "regex 30", Example: "우주재벌 막내아들-1화", Pattern: `우주재벌 막내아들-\d{1,3}화`},
		{Priority: 31, Name: "regex 31", Example: "만년만에 귀환한 플레이어 515화", Pattern: `만년만에\s귀환한\s플레이어\s(외전\s\(\d+\)|\d+)화`},
		{Priority: 32, Name: "regex 32", Example: "< Episode 1. 유료 서비스 시작 (1) >", Pattern: `< Episode \d+\. [^>]+ >`},
		{Priority: 33, Name: "regex 33", Example: "# [47화] 대장간", Pattern: `^# \[\d+화\] [^\(\r\n]+(?: \(\d+\))?$`},
		{Priority: 34, Name: "regex 34", Example: "< 진주만에 입항 하다 >", Pattern: `^<[^>]+>$`},
		{Priority: 35, Name: "regex 35", Example: "048 - 비상 계엄 (7)", Pattern: `^\d{3} - .+ \(\d+\)$`},
		{Priority: 36, Name: "regex 36", Example: "002 - 대혼란", Pattern: `^\d{3} - .+$`},
		{Priority: 37, Name: "regex 37", Example: "1화", Pattern: `\b\d{1,3}화`},
	}
}

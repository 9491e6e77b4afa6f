package fortune

// compatibilityTable maps [self][other] to an affinity score in [0,100].
// The table is intentionally asymmetric: table[a][b] and table[b][a] can
// differ, and lookups are always self → other. Do not "repair" the
// asymmetry.
var compatibilityTable = [12][12]int{
	{90, 85, 95, 70, 80, 75, 60, 65, 88, 92, 77, 85}, // 牡羊
	{80, 90, 75, 85, 95, 88, 77, 70, 65, 82, 68, 78}, // 金牛
	{95, 80, 90, 88, 70, 60, 85, 75, 95, 77, 92, 85}, // 雙子
	{65, 88, 70, 90, 80, 95, 60, 85, 75, 78, 68, 92}, // 巨蟹
	{82, 95, 70, 88, 90, 80, 85, 60, 75, 65, 95, 77}, // 獅子
	{75, 88, 95, 90, 65, 92, 80, 85, 60, 78, 68, 95}, // 處女
	{60, 70, 85, 75, 88, 95, 90, 65, 82, 68, 95, 77}, // 天秤
	{85, 65, 60, 95, 75, 85, 77, 90, 95, 80, 68, 78}, // 天蠍
	{88, 75, 95, 70, 65, 60, 85, 95, 90, 77, 82, 92}, // 射手
	{92, 82, 77, 78, 65, 70, 95, 90, 75, 88, 85, 80}, // 摩羯
	{95, 88, 92, 85, 78, 80, 90, 70, 75, 82, 77, 95}, // 水瓶
	{85, 80, 95, 92, 88, 77, 75, 70, 95, 65, 90, 85}, // 雙魚
}

// defaultScore is used when a pair cannot be looked up. Unreachable with
// valid signs and the full table, but preserved as the documented default.
const defaultScore = 70

// ScoreOf returns the affinity score for the directed pair self → other.
func ScoreOf(self, other Sign) int {
	if !self.Valid() || !other.Valid() {
		return defaultScore
	}
	return compatibilityTable[self][other]
}

// Match is a scored candidate, the "benefactor of the day".
type Match struct {
	Person Person `json:"person"`
	Score  int    `json:"score"`
}

// BestMatch picks the candidate with the highest affinity to self.
// Candidates without a birth date are skipped entirely, not scored.
// Ties go to the earliest candidate: the current best is replaced only
// on a strictly greater score. Returns nil when nothing is scorable.
func BestMatch(self Sign, candidates []Person) *Match {
	var best *Match
	bestScore := -1

	for _, p := range candidates {
		if p.Birth == nil {
			continue
		}
		score := ScoreOf(self, ResolveSign(p.Birth))
		if score > bestScore {
			best = &Match{Person: p, Score: score}
			bestScore = score
		}
	}

	return best
}

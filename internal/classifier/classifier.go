package classifier

import "strings"

const (
	maxTags     = 10
	maxKeywords = 20
	minTokenLen = 4
)

// Classification — результат автоклассификации документа.
type Classification struct {
	Category string
	Project  string
	Team     string
	Tags     []string
}

// Classifier подбирает метки по таблицам правил. Детерминирован:
// одинаковый текст всегда даёт одинаковый результат.
type Classifier struct {
	rules RuleSet
}

func New(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Categorize склеивает title+description+content и подбирает метку
// по каждой из трёх таблиц независимо.
func (c *Classifier) Categorize(title, description, content string) Classification {
	blob := strings.ToLower(title + " " + description + " " + content)

	// Один стеммированный набор токенов на все три таблицы.
	stemmed := make(map[string]struct{})
	for _, tok := range Tokenize(blob) {
		stemmed[Stem(tok)] = struct{}{}
	}

	return Classification{
		Category: bestLabel(c.rules.Categories, stemmed, DefaultCategory),
		Project:  bestLabel(c.rules.Projects, stemmed, DefaultProject),
		Team:     bestLabel(c.rules.Teams, stemmed, DefaultTeam),
		Tags:     extractTags(blob),
	}
}

// bestLabel считает по каждому правилу количество сработавших триггеров.
// Триггер засчитывается по присутствию, не по частоте. Заменяет лидера
// только строго больший счёт — при равенстве остаётся более ранняя метка.
func bestLabel(rules []Rule, stemmed map[string]struct{}, fallback string) string {
	best := fallback
	bestScore := 0

	for _, rule := range rules {
		score := 0
		for _, kw := range rule.Keywords {
			if _, ok := stemmed[Stem(strings.ToLower(kw))]; ok {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule.Label
		}
	}

	return best
}

// extractTags берёт первые 10 значимых токенов (длиннее 3 символов, не
// стоп-слова) и убирает дубли, сохраняя порядок первого вхождения.
func extractTags(blob string) []string {
	survived := make([]string, 0, maxTags)
	for _, tok := range Tokenize(blob) {
		if len(tok) < minTokenLen || IsStopWord(tok) {
			continue
		}
		survived = append(survived, tok)
		if len(survived) == maxTags {
			break
		}
	}

	seen := make(map[string]struct{}, len(survived))
	tags := make([]string, 0, len(survived))
	for _, t := range survived {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// ExtractKeywords — первые 20 значимых токенов в исходном порядке.
// В отличие от тегов дубли не убираются и стемминг не применяется.
func (c *Classifier) ExtractKeywords(text string) []string {
	keywords := make([]string, 0, maxKeywords)
	for _, tok := range Tokenize(text) {
		if len(tok) < minTokenLen || IsStopWord(tok) {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

package classifier

// Стандартный список английских стоп-слов.
// Список фиксированный: это такие же конфигурационные данные, как таблицы правил.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"about", "above", "after", "again", "all", "also", "am", "an", "and",
		"another", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "came", "can",
		"cannot", "come", "could", "did", "do", "does", "doing", "during",
		"each", "few", "for", "from", "further", "get", "got", "had", "has",
		"have", "he", "her", "here", "him", "himself", "his", "how", "if",
		"in", "into", "is", "it", "its", "itself", "like", "make", "many",
		"me", "might", "more", "most", "much", "must", "my", "myself",
		"never", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
		"or", "other", "our", "ours", "ourselves", "out", "over", "own",
		"said", "same", "see", "should", "since", "so", "some", "still",
		"such", "take", "than", "that", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was", "way",
		"we", "well", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "with", "would", "you", "your", "yours",
		"yourself", "yourselves",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

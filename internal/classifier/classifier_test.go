package classifier

import (
	"reflect"
	"strings"
	"testing"
)

func TestStem(t *testing.T) {
	cases := map[string]string{
		"campaigns": "campaign",
		"running":   "run",
		"branding":  "brand",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, ожидалось %q", in, got, want)
		}
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	c := New(DefaultRules())

	first := c.Categorize("Campaign brief", "social media plan", "launch budget and kpi report")
	for i := 0; i < 5; i++ {
		again := c.Categorize("Campaign brief", "social media plan", "launch budget and kpi report")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("классификация недетерминирована: %+v != %+v", first, again)
		}
	}
}

func TestCategorize_Fallback(t *testing.T) {
	c := New(DefaultRules())

	got := c.Categorize("zzzz", "qqqq", "wwww eeee rrrr")
	if got.Category != DefaultCategory {
		t.Errorf("category = %q, ожидалось %q", got.Category, DefaultCategory)
	}
	if got.Project != DefaultProject {
		t.Errorf("project = %q, ожидалось %q", got.Project, DefaultProject)
	}
	if got.Team != DefaultTeam {
		t.Errorf("team = %q, ожидалось %q", got.Team, DefaultTeam)
	}
}

func TestCategorize_TieBreakKeepsEarlierLabel(t *testing.T) {
	c := New(DefaultRules())

	// Event (conference, workshop) и Research (survey, analysis) — по 2 очка.
	// Побеждает объявленная раньше.
	got := c.Categorize("conference workshop", "", "survey analysis")
	if got.Category != "Event" {
		t.Errorf("category = %q, ожидалось Event (ранняя метка при равном счёте)", got.Category)
	}
}

func TestCategorize_StemmedTriggerMatch(t *testing.T) {
	c := New(DefaultRules())

	// «campaigns» в тексте должен попасть в триггер «campaign» через стемминг.
	got := c.Categorize("Our campaigns overview", "", "")
	if got.Category != "Campaign" {
		t.Errorf("category = %q, ожидалось Campaign", got.Category)
	}
}

// Сквозной пример: счёт по фиксированным таблицам.
// Категория: Campaign и Product по 2 очка, Campaign объявлена первой.
// Проект: Product Launch набирает 2 (launch, release) против 1 у Q2 Campaign.
// Команда: Marketing за счёт «campaign».
func TestCategorize_EndToEnd(t *testing.T) {
	c := New(DefaultRules())

	got := c.Categorize("Untitled", "", "Q2 campaign launch for new product feature release")
	if got.Category != "Campaign" {
		t.Errorf("category = %q, ожидалось Campaign", got.Category)
	}
	if got.Project != "Product Launch" {
		t.Errorf("project = %q, ожидалось Product Launch", got.Project)
	}
	if got.Team != "Marketing" {
		t.Errorf("team = %q, ожидалось Marketing", got.Team)
	}
}

func TestCategorize_Tags(t *testing.T) {
	c := New(DefaultRules())

	got := c.Categorize("Untitled", "", "Q2 campaign launch for new product feature release")
	want := []string{"untitled", "campaign", "launch", "product", "feature", "release"}
	if !reflect.DeepEqual(got.Tags, want) {
		t.Errorf("tags = %v, ожидалось %v", got.Tags, want)
	}
}

func TestTags_CapAndDedup(t *testing.T) {
	c := New(DefaultRules())

	// Много повторов и стоп-слов: на выходе максимум 10 уникальных тегов,
	// порядок первого вхождения сохранён.
	text := strings.Repeat("analytics report analytics dashboard because ", 10)
	got := c.Categorize("", "", text)

	if len(got.Tags) > 10 {
		t.Fatalf("тегов %d, ожидалось не больше 10", len(got.Tags))
	}
	seen := map[string]bool{}
	for _, tag := range got.Tags {
		if seen[tag] {
			t.Errorf("дубликат тега %q", tag)
		}
		seen[tag] = true
		if len(tag) <= 3 {
			t.Errorf("тег %q короче 4 символов", tag)
		}
		if IsStopWord(tag) {
			t.Errorf("тег %q — стоп-слово", tag)
		}
	}
	if !reflect.DeepEqual(got.Tags, []string{"analytics", "report", "dashboard"}) {
		t.Errorf("tags = %v, порядок первого вхождения нарушен", got.Tags)
	}
}

func TestExtractKeywords_CapWithoutDedup(t *testing.T) {
	c := New(DefaultRules())

	keywords := c.ExtractKeywords(strings.Repeat("metric dashboard ", 30))
	if len(keywords) != 20 {
		t.Fatalf("ключевых слов %d, ожидалось ровно 20", len(keywords))
	}
	// В отличие от тегов дубли допустимы.
	if keywords[0] != "metric" || keywords[2] != "metric" {
		t.Errorf("keywords = %v, ожидались повторы без дедупликации", keywords[:4])
	}
}

func TestExtractKeywords_FiltersShortAndStopWords(t *testing.T) {
	c := New(DefaultRules())

	keywords := c.ExtractKeywords("the ad was about performance and kpi insight")
	want := []string{"performance", "insight"}
	if !reflect.DeepEqual(keywords, want) {
		t.Errorf("keywords = %v, ожидалось %v", keywords, want)
	}
}

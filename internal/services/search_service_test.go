package services

import (
	"context"
	"reflect"
	"testing"

	"docsearch/internal/models"
)

func TestSearch_QueryForcesRelevanceMode(t *testing.T) {
	repo := newMockDocRepo()
	svc := NewSearchService(repo)

	// sort_by задан, но при непустом запросе он игнорируется:
	// работает текстовый поиск, а не листинг.
	_, _, err := svc.Search(context.Background(), SearchParams{
		Query:  "  campaign  ",
		SortBy: "date",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !repo.textSearchCalled {
		t.Error("текстовый поиск не вызван при непустом запросе")
	}
	if repo.listCalled {
		t.Error("листинг не должен вызываться при непустом запросе")
	}
}

func TestSearch_BlankQueryUsesListWithSort(t *testing.T) {
	repo := newMockDocRepo()
	svc := NewSearchService(repo)

	_, _, err := svc.Search(context.Background(), SearchParams{
		Query:  "   ",
		SortBy: "date",
	})
	if err != nil {
		t.Fatal(err)
	}
	if repo.textSearchCalled {
		t.Error("пустой запрос не должен запускать текстовый поиск")
	}
	if !repo.listCalled {
		t.Error("листинг не вызван")
	}
	if repo.lastSortBy != "date" {
		t.Errorf("sort_by = %q, ожидалось date", repo.lastSortBy)
	}
}

func TestSearch_PaginationCeil(t *testing.T) {
	repo := newMockDocRepo() // TextSearch отдаёт total = 45
	svc := NewSearchService(repo)

	_, p, err := svc.Search(context.Background(), SearchParams{Query: "brand", Page: 2, Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	if p.Total != 45 {
		t.Errorf("total = %d, ожидалось 45", p.Total)
	}
	if p.Pages != 3 {
		t.Errorf("pages = %d, ожидалось 3 (ceil(45/20))", p.Pages)
	}
	if p.Page != 2 || p.Limit != 20 {
		t.Errorf("page/limit = %d/%d", p.Page, p.Limit)
	}
}

func TestSuggest_ShortQuerySkipsRepo(t *testing.T) {
	repo := newMockDocRepo()
	repo.suggestionDocs = []*models.Document{{Title: "Brand Guidelines 2024"}}
	svc := NewSearchService(repo)

	for _, q := range []string{"", "b", " b "} {
		got, err := svc.Suggest(context.Background(), q)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, ожидался пустой список", q, got)
		}
	}
}

func TestSuggest_TitlesAndTags(t *testing.T) {
	repo := newMockDocRepo()
	repo.suggestionDocs = []*models.Document{
		{Title: "Brand Guidelines 2024", Tags: []string{"branding", "design"}},
		{Title: "Q2 Report", Tags: []string{"brand"}},
	}
	svc := NewSearchService(repo)

	got, err := svc.Suggest(context.Background(), "bra")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Brand Guidelines 2024", "branding", "brand"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suggestions = %v, ожидалось %v", got, want)
	}
}

func TestSuggest_CapAndDedup(t *testing.T) {
	repo := newMockDocRepo()
	for i := 0; i < 10; i++ {
		repo.suggestionDocs = append(repo.suggestionDocs, &models.Document{
			Title: "Campaign Plan",
			Tags:  []string{"campaign", "camp-q1", "camp-q2", "camp-q3", "camp-q4", "camp-eu", "camp-us", "camp-apac"},
		})
	}
	svc := NewSearchService(repo)

	got, err := svc.Suggest(context.Background(), "camp")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 8 {
		t.Fatalf("подсказок %d, ожидалось ровно 8", len(got))
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("дубликат подсказки %q", s)
		}
		seen[s] = true
	}
	if got[0] != "Campaign Plan" {
		t.Errorf("первая подсказка %q, ожидался заголовок", got[0])
	}
}

func TestPopular_ThreeKeywordsTwoTagsPerDoc(t *testing.T) {
	repo := newMockDocRepo()
	repo.mostViewedDocs = []*models.Document{
		{
			Keywords: []string{"kw1", "kw2", "kw3", "kw4"},
			Tags:     []string{"tag1", "tag2", "tag3"},
		},
	}
	svc := NewSearchService(repo)

	got, err := svc.Popular(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"kw1", "kw2", "kw3", "tag1", "tag2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("popular = %v, ожидалось %v (3 ключевых слова + 2 тега)", got, want)
	}
}

func TestPopular_CappedAtTenWithDedup(t *testing.T) {
	repo := newMockDocRepo()
	for i := 0; i < popularDocsLimit; i++ {
		repo.mostViewedDocs = append(repo.mostViewedDocs, &models.Document{
			Keywords: []string{"shared", kwName(i, 0), kwName(i, 1)},
			Tags:     []string{"shared-tag", kwName(i, 2)},
		})
	}
	svc := NewSearchService(repo)

	got, err := svc.Popular(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != maxPopularTerms {
		t.Fatalf("терминов %d, ожидалось %d", len(got), maxPopularTerms)
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("дубликат термина %q", s)
		}
		seen[s] = true
	}
}

func kwName(doc, n int) string {
	return "term-" + string(rune('a'+doc)) + "-" + string(rune('0'+n))
}

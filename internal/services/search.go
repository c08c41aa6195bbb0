package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"docsearch/internal/logger"
	"docsearch/internal/models"
	"docsearch/internal/repository"

	"go.uber.org/zap"
)

const (
	minSuggestQueryLen  = 2
	maxSuggestions      = 8
	suggestionDocsLimit = 10
	popularDocsLimit    = 10
	maxPopularTerms     = 10
)

type SearchService struct {
	repo repository.DocumentRepo
}

func NewSearchService(repo repository.DocumentRepo) *SearchService {
	return &SearchService{repo: repo}
}

type SearchServiceInterface interface {
	Search(ctx context.Context, params SearchParams) ([]*models.Document, models.Pagination, error)
	Suggest(ctx context.Context, query string) ([]string, error)
	Popular(ctx context.Context) ([]string, error)
}

// SearchParams — запрос, фильтры, сортировка и страница.
type SearchParams struct {
	Query  string
	Filter models.DocumentFilter
	SortBy string
	Page   int
	Limit  int
}

// Search — поиск с фильтрами. Непустой запрос всегда включает режим
// релевантности: параметр сортировки при этом игнорируется.
func (s *SearchService) Search(ctx context.Context, params SearchParams) ([]*models.Document, models.Pagination, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 20
	}
	offset := (params.Page - 1) * params.Limit

	var (
		docs  []*models.Document
		total int
		err   error
	)

	query := strings.TrimSpace(params.Query)
	if query != "" {
		docs, total, err = s.repo.TextSearch(ctx, params.Filter, query, params.Limit, offset)
	} else {
		docs, total, err = s.repo.List(ctx, params.Filter, params.SortBy, params.Limit, offset)
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка поиска документов (service)", zap.String("query", query), zap.Error(err))
		return nil, models.Pagination{}, err
	}

	return docs, paginate(params.Page, params.Limit, total), nil
}

// Suggest — автодополнение по заголовкам и тегам.
// Запрос короче 2 символов — пустой ответ без обращения к базе.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestQueryLen {
		return []string{}, nil
	}

	docs, err := s.repo.SuggestionCandidates(ctx, query, suggestionDocsLimit)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(query)
	set := newOrderedSet()
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), lower) {
			set.add(doc.Title)
		}
		for _, tag := range doc.Tags {
			if strings.Contains(strings.ToLower(tag), lower) {
				set.add(tag)
			}
		}
	}

	return set.take(maxSuggestions), nil
}

// Popular — термины самых просматриваемых документов:
// по 3 ключевых слова и 2 тега с каждого из топ-10.
func (s *SearchService) Popular(ctx context.Context) ([]string, error) {
	docs, err := s.repo.MostViewed(ctx, popularDocsLimit)
	if err != nil {
		return nil, err
	}

	set := newOrderedSet()
	for _, doc := range docs {
		for i, kw := range doc.Keywords {
			if i == 3 {
				break
			}
			set.add(kw)
		}
		for i, tag := range doc.Tags {
			if i == 2 {
				break
			}
			set.add(tag)
		}
	}

	return set.take(maxPopularTerms), nil
}

// orderedSet — множество с сохранением порядка вставки:
// семантика «первый пришёл — первый остался» для подсказок и терминов.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) take(n int) []string {
	if len(s.items) <= n {
		out := make([]string, len(s.items))
		copy(out, s.items)
		return out
	}
	out := make([]string, n)
	copy(out, s.items[:n])
	return out
}

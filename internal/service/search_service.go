package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jarias/webtools/internal/config"
	"github.com/jarias/webtools/internal/model"
	"github.com/jarias/webtools/internal/repository"
	"github.com/jarias/webtools/internal/scrape"
)

// Fixed user-facing messages for the search tool.
const (
	msgEmptyQuery = "La consulta de búsqueda está vacía. Escribe algo para buscar."
	msgNoResults  = "No se encontraron resultados. Prueba con otras palabras clave."
)

// SearchService runs a keyword search and renders the outcome as one text
// block. Every failure mode comes back as text; no error leaves this layer.
type SearchService interface {
	Search(ctx context.Context, query string) string
}

type searchService struct {
	repo   repository.SearchRepository
	parser scrape.ResultParser
	log    *zap.SugaredLogger
}

// NewSearchService creates the search pipeline. Pass nil for either
// dependency to use the default implementation.
func NewSearchService(repo repository.SearchRepository, parser scrape.ResultParser) SearchService {
	if repo == nil {
		repo = repository.NewSearchRepository()
	}
	if parser == nil {
		parser = scrape.DuckDuckGoParser{}
	}
	return &searchService{
		repo:   repo,
		parser: parser,
		log:    config.GetLogger(),
	}
}

func (s *searchService) Search(ctx context.Context, query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return msgEmptyQuery
	}

	page, err := s.repo.FetchResultsPage(ctx, q)
	if err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("La búsqueda devolvió el estado HTTP %d (%s).", statusErr.StatusCode, statusErr.URL)
		}
		return fmt.Sprintf("No se pudo completar la búsqueda de %q: %v", q, err)
	}

	results, err := s.parser.Parse(page)
	if err != nil {
		// Degrade to whatever the parser accumulated before failing.
		s.log.Warnw("could not fully parse results page", "query", q, "error", err)
	}

	// Untitled entries never count toward the no-results check.
	var kept []model.SearchResult
	for _, r := range results {
		if strings.TrimSpace(r.Title) != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msgNoResults
	}
	if max := config.GetSearchMaxResults(); len(kept) > max {
		kept = kept[:max]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resultados para %q:\n", q)
	for i, r := range kept {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
		if r.URL != "" {
			fmt.Fprintf(&b, "   %s\n", r.URL)
		}
	}
	return b.String()
}

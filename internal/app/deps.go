package app

import (
	"log/slog"

	"github.com/heartmarshall/curator-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/curator-backend/internal/adapter/postgres/category"
	contentrepo "github.com/heartmarshall/curator-backend/internal/adapter/postgres/content"
	userrepo "github.com/heartmarshall/curator-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/curator-backend/internal/config"
	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/enrichment"
	"github.com/heartmarshall/curator-backend/internal/metrics"
	"github.com/heartmarshall/curator-backend/internal/service/analysis"
	"github.com/heartmarshall/curator-backend/internal/service/category"
	"github.com/heartmarshall/curator-backend/internal/service/content"
	"github.com/heartmarshall/curator-backend/internal/service/user"
)

// Deps holds the repositories and services shared by the HTTP server and
// the operator CLI.
type Deps struct {
	Contents   *contentrepo.Repo
	Categories *categoryrepo.Repo
	Users      *userrepo.Repo

	Completer enrichment.Completer
	Policy    *enrichment.Policy

	ContentService  *content.Service
	CategoryService *category.Service
	UserService     *user.Service
	AnalysisService *analysis.Service
}

// NewDeps wires repositories over db and the enrichment pipeline over the
// configured provider. collector may be nil.
func NewDeps(cfg *config.Config, db postgres.DB, collector *metrics.Collector, logger *slog.Logger) *Deps {
	d := &Deps{
		Contents:   contentrepo.New(db),
		Categories: categoryrepo.New(db),
		Users:      userrepo.New(db),
		Completer:  NewCompleter(cfg.LLM, logger),
	}

	var opts []enrichment.EnricherOption
	if collector != nil {
		opts = append(opts, enrichment.WithRecorder(collector))
	}
	enricher := enrichment.NewEnricher(logger, d.Completer, opts...)
	d.Policy = enrichment.NewPolicy(logger, enricher, d.Contents, domain.ReadMode(cfg.Enrichment.ReadMode))

	d.ContentService = content.NewService(logger, d.Contents, d.Categories, d.Policy)
	d.CategoryService = category.NewService(logger, d.Categories)
	d.UserService = user.NewService(logger, d.Users, d.Contents, d.Categories, postgres.NewTxManager(db))
	d.AnalysisService = analysis.NewService(logger, d.Completer)
	return d
}

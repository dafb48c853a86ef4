package handler

import (
	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	queries     *content.Queries
	members     *service.MemberService
	submissions *service.SubmissionService
	boosts      *service.BoostService
	renders     *service.RenderService
	uploadDir   string
	uploadURL   string
}

// NewAPI constructs a handler set over the content store and community services.
func NewAPI(store *content.Store, gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:          gdb,
		queries:     content.NewQueries(store, nil),
		members:     service.NewMemberService(gdb),
		submissions: service.NewSubmissionService(gdb),
		boosts:      service.NewBoostService(gdb),
		renders:     service.NewRenderService(),
		uploadDir:   uploadDir,
		uploadURL:   uploadURL,
	}
}

// Queries exposes the content query service for tests.
func (a *API) Queries() *content.Queries {
	return a.queries
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

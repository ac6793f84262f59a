package server

import (
	"net/http"

	"gorm.io/gorm"

	"depotlens/internal/config"
	"depotlens/internal/marketdata"
	"depotlens/internal/services"
)

// Services is the set of business services the router serves.
type Services struct {
	Portfolio services.PortfolioServicer
	Snapshots services.SnapshotServicer
	Market    services.MarketServicer
	Charts    services.ChartServicer
	Documents services.DocumentServicer
	Auth      services.AuthServicer
	Audit     services.AuditServicer
}

// NewServices wires the services on top of db, a market data provider and a
// document processor.
func NewServices(db *gorm.DB, cfg *config.Config, provider marketdata.Provider, processor services.DocumentProcessor) *Services {
	portfolio := services.NewPortfolioService(db)
	snapshots := services.NewSnapshotService(db)

	return &Services{
		Portfolio: portfolio,
		Snapshots: snapshots,
		Market:    services.NewMarketService(db, provider, portfolio, snapshots),
		Charts:    services.NewChartService(portfolio, provider),
		Documents: services.NewDocumentService(processor, portfolio, services.DocumentConfig{
			UploadDir:           cfg.UploadDir,
			MaxBytes:            cfg.MaxUploadMB << 20,
			AutoCreateThreshold: cfg.AutoCreateThreshold,
		}),
		Auth:  services.NewAuthService(cfg.OwnerPasswordHash),
		Audit: services.NewAuditService(db),
	}
}

// NewMarketProvider builds the provider chain: Finnhub first, Yahoo Finance as
// fallback, both behind a shared cache.
func NewMarketProvider(cfg *config.Config, httpClient *http.Client) marketdata.Provider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	chain := marketdata.NewFallbackProvider(
		marketdata.NewFinnhubProvider(httpClient, cfg.FinnhubAPIKey, cfg.MarketMinInterval),
		marketdata.NewYahooProvider(httpClient),
	)
	return marketdata.NewCachedProvider(chain, cfg.MarketCacheTTL)
}

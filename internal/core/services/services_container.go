package services

import (
	"github.com/SscSPs/currency_exchange/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, registry ports.CurrencyRegistry) *portssvc.ServiceContainer {
	referenceCode := DefaultReferenceCurrency
	if cfg != nil && cfg.ReferenceCurrency != "" {
		referenceCode = cfg.ReferenceCurrency
	}

	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, registry)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo, registry)

	// The resolver only reads rates; the exchange service checks currencies before resolving.
	container.RateResolver = NewRateResolver(repos.ExchangeRateRepo, referenceCode)
	container.Exchange = NewExchangeService(repos.CurrencyRepo, container.RateResolver, registry, referenceCode)

	return container
}

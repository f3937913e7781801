// Package app wires together the adapters and the market engine.
// It owns the only mutable state in the system: the catalogue snapshot
// (base list + overrides merged into the effective catalogue) and the
// shopkeeper sessions. The engine itself stays pure; every query runs
// against an immutable snapshot taken under a read lock.
package app

import (
	"fmt"
	"sync"

	"github.com/civmc-shops/shopdex/internal/domain/market"
	"github.com/civmc-shops/shopdex/internal/obs"
	"github.com/civmc-shops/shopdex/internal/ports"
	"github.com/google/uuid"
)

// App is the top-level container wiring all components together.
type App struct {
	source ports.CatalogueSource
	store  ports.OverrideStore
	keys   ports.Keyring

	mu        sync.RWMutex
	base      []market.Shop
	overrides map[string]market.Override
	effective []market.Shop

	sessMu   sync.Mutex
	sessions map[string]string // token -> shop name

	watcher ports.Watcher
}

// New creates an App over the given adapters. Call Start before querying.
func New(source ports.CatalogueSource, store ports.OverrideStore, keys ports.Keyring) *App {
	return &App{
		source:   source,
		store:    store,
		keys:     keys,
		sessions: make(map[string]string),
	}
}

// Start loads the base catalogue and stored overrides and builds the first
// effective snapshot.
func (a *App) Start() error {
	return a.Reload()
}

// Reload re-reads the catalogue source and override store and swaps in a
// fresh effective snapshot. In-flight queries keep the snapshot they took.
func (a *App) Reload() error {
	base, err := a.source.Load()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	overrides := map[string]market.Override{}
	if a.store != nil {
		overrides, err = a.store.LoadOverrides()
		if err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
	}

	a.mu.Lock()
	a.base = base
	a.overrides = overrides
	a.effective = market.Resolve(base, overrides)
	shops := len(a.effective)
	a.mu.Unlock()

	obs.Logger.Info("catalogue loaded", "shops", shops, "overrides", len(overrides))
	return nil
}

// WatchCatalogue registers a watcher on the catalogue file and reloads the
// snapshot on every (debounced) change.
func (a *App) WatchCatalogue(w ports.Watcher, path string) error {
	if err := w.Watch(path, func() {
		if err := a.Reload(); err != nil {
			obs.Logger.Error("catalogue reload failed", "path", path, "error", err)
		}
	}); err != nil {
		return err
	}
	a.watcher = w
	return nil
}

// Stop releases the watcher, if any.
func (a *App) Stop() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// Catalogue returns the current effective catalogue snapshot. The engine
// never mutates it, so the slice is shared, not copied.
func (a *App) Catalogue() []market.Shop {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.effective
}

// Items returns the distinct item names across the effective catalogue.
func (a *App) Items() []string {
	return market.ItemNames(a.Catalogue())
}

// QueryParams carries the raw user inputs of one directory query. All fields
// are strings as submitted by the presentation layer; numeric fields parse
// leniently (empty or non-numeric means the constraint is not set).
type QueryParams struct {
	Search      string
	Selected    string
	UserX       string
	UserZ       string
	MaxDistance string
	MinRating   string
	Sort        string
}

// QueryResult is everything a presentation layer needs to render one query.
// NotFound distinguishes "item resolved but nothing passes the filters" from
// "no item selected yet".
type QueryResult struct {
	Resolution market.Resolution
	Offers     []market.Offer
	Shops      []market.ShopEntry
	NotFound   bool
}

// Query runs the full pipeline over the current snapshot: item resolution,
// offer ranking, and shop aggregation.
func (a *App) Query(p QueryParams) QueryResult {
	catalogue := a.Catalogue()

	filters := market.Filters{
		UserX:       market.ParseNumber(p.UserX),
		UserZ:       market.ParseNumber(p.UserZ),
		MaxDistance: market.ParseNumber(p.MaxDistance),
		MinRating:   market.ParseNumber(p.MinRating),
	}
	mode := market.ParseRankMode(p.Sort)

	res := market.ResolveItem(catalogue, p.Search, p.Selected)

	var offers []market.Offer
	if res.Active() {
		offers = market.BestOffers(catalogue, res.ActiveItem, filters, mode)
	}
	shops := market.ListShops(catalogue, res.ActiveItem, p.Search, filters)

	return QueryResult{
		Resolution: res,
		Offers:     offers,
		Shops:      shops,
		NotFound:   res.Active() && len(offers) == 0,
	}
}

// Login resolves a shopkeeper passkey and opens a session. The token is the
// bearer credential for subsequent override saves.
func (a *App) Login(passkey string) (shopName, token string, ok bool, err error) {
	if a.keys == nil {
		return "", "", false, fmt.Errorf("no keyring configured")
	}
	shopName, ok, err = a.keys.Resolve(passkey)
	if err != nil || !ok {
		return "", "", false, err
	}

	token = uuid.NewString()
	a.sessMu.Lock()
	a.sessions[token] = shopName
	a.sessMu.Unlock()

	obs.Logger.Info("shopkeeper login", "shop", shopName)
	return shopName, token, true, nil
}

// Logout invalidates a session token. Unknown tokens are ignored.
func (a *App) Logout(token string) {
	a.sessMu.Lock()
	delete(a.sessions, token)
	a.sessMu.Unlock()
}

// SessionShop returns the shop a session token authorizes.
func (a *App) SessionShop(token string) (string, bool) {
	a.sessMu.Lock()
	defer a.sessMu.Unlock()
	shop, ok := a.sessions[token]
	return shop, ok
}

// SaveOverride persists a shopkeeper edit and refreshes the snapshot.
// The shop must exist in the base catalogue.
func (a *App) SaveOverride(shopName string, ov market.Override) error {
	if a.store == nil {
		return fmt.Errorf("no override store configured")
	}

	a.mu.RLock()
	known := false
	for _, s := range a.base {
		if s.Name == shopName {
			known = true
			break
		}
	}
	a.mu.RUnlock()
	if !known {
		return fmt.Errorf("unknown shop %q", shopName)
	}

	if err := a.store.SaveOverride(shopName, ov); err != nil {
		return err
	}

	a.mu.Lock()
	a.overrides[shopName] = ov
	a.effective = market.Resolve(a.base, a.overrides)
	a.mu.Unlock()

	obs.Logger.Info("override saved", "shop", shopName, "items", len(ov.Items))
	return nil
}

// Package catalogue implements ports.CatalogueSource over a JSON shop file,
// with the stock demo catalogue embedded for compile-time inclusion so the
// binary works with zero setup.
package catalogue

import _ "embed"

//go:embed shops.json
var defaultShops []byte

// Package mock provides test doubles for the ai package interfaces.
//
// The mocks use function fields for behavior injection and provide
// deterministic defaults: FNV-seeded unit vectors for embeddings and the
// production fallback heuristics for field extraction, so tests get
// realistic shapes without any external service.
package mock

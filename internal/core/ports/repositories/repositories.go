package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	// RateRepo answers every view query. In a running server it is the fallback composition
	// of the store and the synthetic dataset.
	RateRepo RateReader
}

package store

// HealthStore provides connectivity checks for the status endpoint
type HealthStore interface {
	// CheckConnectivity verifies the database answers a trivial query
	CheckConnectivity() error
}

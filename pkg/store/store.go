// Package store defines the persistence interface of the development bridge.
package store

// Store is the bridge data store.
type Store interface {
	WebhookStore
}

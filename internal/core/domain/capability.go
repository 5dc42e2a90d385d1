package domain

// Capabilities is the externally-owned, read-only flag set gating transaction
// mutations. It is injected explicitly into whatever performs a gated
// operation; nothing consults it ambiently and nothing mutates it.
// The gate is a local check only: it does not prevent another client from
// mutating the same rows concurrently.
type Capabilities struct {
	AllowEdit   bool
	AllowDelete bool
}

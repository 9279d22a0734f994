package tokenstore

// Store is the single durable slot holding the session token. Written by
// login/registration (Save) and logout (Clear), read once at startup.
type Store interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	// Clear removes the token. Clearing an empty slot is not an error.
	Clear() error
}

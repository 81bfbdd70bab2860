package auth

// User is one entry in the portal's fixed identity set. Records are built
// once at startup and never mutated afterwards.
type User struct {
	EmailKey     string
	PasswordHash string
	DisplayName  string
}

package model

// User represents a personnel profile entries are attributed to. It is not
// an authentication principal; the app has a single local operator.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"` // base64 data URI
	Age     string `json:"age,omitempty"`
	Address string `json:"address,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	Email   string `json:"email,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// DefaultUserID is the id of the user seeded on first run. Users are only
// ever added or edited, never removed, so this id always resolves.
const DefaultUserID = "default"

// DefaultUserName is the display name of the seeded user.
const DefaultUserName = "Master User"

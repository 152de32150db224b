package domain

import "time"

// User is a registered account. Registration and credentials live outside this
// service; the only field it ever changes is Contact.
type User struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`            // Unique display handle
	Contact   string    `json:"contact,omitempty"` // Optional out-of-band contact (e.g. a Telegram handle)
}

// UserSummary is the public view of a user shown in member lists.
type UserSummary struct {
	ID      string `json:"id"`
	Handle  string `json:"handle"`
	Contact string `json:"contact,omitempty"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:      u.ID,
		Handle:  u.Handle,
		Contact: u.Contact,
	}
}

// Package model defines domain entities for the application.
package model

// User represents a stored user record.
// The ID is assigned by the database on insert and never reused.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// UserPatch carries a partial update for a user.
// Nil fields are left untouched by the store.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Avatar    *string
}

// IsEmpty reports whether the patch carries no changes.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil && p.Avatar == nil
}

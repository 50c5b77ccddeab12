package service

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/mockres/mockres/internal/model"
)

// The public creation contract accepts only name+job, but the stored user
// requires email, first/last name, and avatar. This adapter is the single
// place where the display name is translated into a full identity.

// newUserFromName builds a storable user from a display name. The last
// whitespace token becomes the last name, the remainder the first name;
// single-token names get an empty last name. Email and avatar are
// deterministic placeholders derived from the name.
func newUserFromName(name string) *model.User {
	first, last := splitName(name)
	return &model.User{
		Email:     placeholderEmail(name),
		FirstName: first,
		LastName:  last,
		Avatar:    placeholderAvatar(name),
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func placeholderEmail(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return local + "@example.com"
}

// placeholderAvatar picks one of the twelve stock face images. The choice
// is a hash of the name rather than random so repeated creates agree.
func placeholderAvatar(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	face := h.Sum32()%12 + 1
	return fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", face)
}

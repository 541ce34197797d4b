package user

import "github.com/mayatech/storefront/core/order"

type User struct {
	ID                string        `json:"id"`
	Email             string        `json:"email"`
	Name              string        `json:"name"`
	Role              string        `json:"role"`
	EnrolledCourseIDs []string      `json:"enrolledCourseIds"`
	Orders            []order.Order `json:"orders"`
}

// record is what the backing users list persists. The plaintext password is
// part of the mock backend's storage layout, not a design goal.
type record struct {
	User
	Password string `json:"password"`
}

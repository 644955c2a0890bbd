package user

// User represents an account row in the `users` table. JSON field names match
// the wire format the frontend already consumes.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

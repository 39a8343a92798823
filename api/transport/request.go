package transport

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TaskCreateRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
}

// TaskPatchRequest uses pointers so absent fields stay untouched.
type TaskPatchRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

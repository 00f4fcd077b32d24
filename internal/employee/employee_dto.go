package employee

// EmployeeData is the wire shape for both requests and responses.
// ID is ignored on create; the database assigns it.
type EmployeeData struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName" binding:"required,min=3,max=20"`
	LastName  string  `json:"lastName" binding:"required,min=2,max=20"`
	Email     string  `json:"email" binding:"required,min=3,max=50,email"`
	Age       *int    `json:"age"`
	Phone     *string `json:"phone"`
}

package employee

type Employee struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;size:20"`
	LastName  string `gorm:"column:last_name;size:20"`
	Email     string `gorm:"column:email_id;size:50;not null"`
	Age       *int   `gorm:"column:age"`
	Phone     *string
}

func (Employee) TableName() string {
	return "employees"
}

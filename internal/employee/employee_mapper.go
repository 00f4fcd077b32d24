package employee

func ToTransfer(empl Employee) EmployeeData {
	return EmployeeData{
		ID:        empl.ID,
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email,
		Age:       empl.Age,
		Phone:     empl.Phone,
	}
}

func ToRecord(data EmployeeData) Employee {
	return Employee{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Age:       data.Age,
		Phone:     data.Phone,
	}
}

// ToTransferList never returns nil so an empty table renders as [].
func ToTransferList(empls []Employee) []EmployeeData {
	res := make([]EmployeeData, len(empls))
	for i, e := range empls {
		res[i] = ToTransfer(e)
	}
	return res
}

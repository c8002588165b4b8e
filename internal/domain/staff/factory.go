package staff

import "fmt"

// EmployeeFactory creates employees of one role
type EmployeeFactory interface {
	Role() Role
	CreateEmployee() Employee
}

// CashierFactory hires cashiers named Cashier-1, Cashier-2, ...
type CashierFactory struct {
	Capacity int
	hired    int
}

func (f *CashierFactory) Role() Role { return RoleCashier }

func (f *CashierFactory) CreateEmployee() Employee {
	f.hired++
	return NewCashier(fmt.Sprintf("Cashier-%d", f.hired), f.Capacity)
}

// CaretakerFactory hires caretakers named Caretaker-1, Caretaker-2, ...
type CaretakerFactory struct {
	Capacity int
	hired    int
}

func (f *CaretakerFactory) Role() Role { return RoleCaretaker }

func (f *CaretakerFactory) CreateEmployee() Employee {
	f.hired++
	return NewCaretaker(fmt.Sprintf("Caretaker-%d", f.hired), f.Capacity)
}

// ManagerFactory hires managers named Manager-1, Manager-2, ...
type ManagerFactory struct {
	Capacity int
	hired    int
}

func (f *ManagerFactory) Role() Role { return RoleManager }

func (f *ManagerFactory) CreateEmployee() Employee {
	f.hired++
	return NewManager(fmt.Sprintf("Manager-%d", f.hired), f.Capacity)
}

// FactoryFor returns the factory for a role
func FactoryFor(role Role, capacity int) (EmployeeFactory, error) {
	switch role {
	case RoleCashier:
		return &CashierFactory{Capacity: capacity}, nil
	case RoleCaretaker:
		return &CaretakerFactory{Capacity: capacity}, nil
	case RoleManager:
		return &ManagerFactory{Capacity: capacity}, nil
	}
	return nil, &ErrUnknownRole{Role: string(role)}
}

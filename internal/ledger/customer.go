package ledger

// Customer owns one or more accounts. The password is stored as given and
// never checked.
type Customer struct {
	id       int64
	password string
	accounts map[int64]*Account
	order    []int64
}

// CustomerSummary lists a customer's accounts in the order they were added.
type CustomerSummary struct {
	CustomerID     int64
	AccountNumbers []int64
}

func newCustomer(id int64, password string) *Customer {
	return &Customer{
		id:       id,
		password: password,
		accounts: make(map[int64]*Account),
	}
}

func (c *Customer) addAccount(a *Account) {
	if _, ok := c.accounts[a.number]; !ok {
		c.order = append(c.order, a.number)
	}
	c.accounts[a.number] = a
}

func (c *Customer) summary() CustomerSummary {
	numbers := make([]int64, len(c.order))
	copy(numbers, c.order)
	return CustomerSummary{CustomerID: c.id, AccountNumbers: numbers}
}

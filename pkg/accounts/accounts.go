package accounts

import "fmt"

// Account is one card on the user page. Display-only mock data; the demo
// backend has no account endpoints.
type Account struct {
	Title       string
	Amount      string
	Description string
}

func Demo() []Account {
	return []Account{
		{Title: "Argent Bank Checking (x8349)", Amount: "$2,082.79", Description: "Available Balance"},
		{Title: "Argent Bank Savings (x6712)", Amount: "$10,928.42", Description: "Available Balance"},
		{Title: "Argent Bank Credit Card (x8349)", Amount: "$184.30", Description: "Current Balance"},
	}
}

func (a Account) String() string {
	return fmt.Sprintf("%s\n  %s\n  %s", a.Title, a.Amount, a.Description)
}

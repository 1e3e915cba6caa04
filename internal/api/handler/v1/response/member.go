package response

import "github.com/vietanh2810/lucky-friday-api/internal/domain"

type Member struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewMember(m domain.Member) Member {
	return Member{
		ID:   m.ID,
		Name: m.Name,
	}
}

func NewMembers(ms []domain.Member) []Member {
	members := make([]Member, 0, len(ms))
	for _, m := range ms {
		members = append(members, NewMember(m))
	}

	return members
}

type Account struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func NewAccounts(as []domain.Account) []Account {
	accounts := make([]Account, 0, len(as))
	for _, a := range as {
		accounts = append(accounts, Account{ID: a.ID, Title: a.Title})
	}

	return accounts
}

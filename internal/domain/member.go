package domain

type Member struct {
	ID   uint
	Name string
}

package domain

type Account struct {
	ID    uint
	Title string
}

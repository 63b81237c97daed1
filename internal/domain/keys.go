package domain

type CtxKey string

const (
	KeyAccountID   CtxKey = "AccountID"
	KeyAccountRole CtxKey = "AccountRole"
	KeyAccount     CtxKey = "Account"
)

package queries

type TransactionFilters struct {
	Kind      string `query:"kind"`
	AccountID int64  `query:"account_id"`
	Limit     int    `query:"limit"`
	Page      int    `query:"page"`
}

type AccountFilters struct {
	UserID int64 `query:"user_id"`
}

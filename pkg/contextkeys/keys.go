package contextkeys

type contextKey string

const (
	UserIDKey   contextKey = "UserID"
	UserKey     contextKey = "User"
	UserRoleKey contextKey = "UserRole"
	RequestID   contextKey = "RequestID"
	TxKey       contextKey = "Tx"
)

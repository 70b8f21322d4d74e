package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyRequestID CtxKey = "RequestID"
	KeyClientIP  CtxKey = "ClientIP"
)

// Package v1 定义额度服务对外 HTTP 接口的请求与响应结构。
package v1

import "time"

// CreateCheckoutRequest 创建结账会话请求
type CreateCheckoutRequest struct {
	PackId string `json:"pack_id"`
	UserId string `json:"user_id"`
}

// CreateCheckoutReply 创建结账会话响应
type CreateCheckoutReply struct {
	CheckoutUrl string `json:"checkout_url"`
}

// ListPackagesRequest 消息包列表请求
type ListPackagesRequest struct{}

// Package 消息包
type Package struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Credits  int64   `json:"credits"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// ListPackagesReply 消息包列表响应
type ListPackagesReply struct {
	Packages []*Package `json:"packages"`
}

// ConsumeRequest 额度消费请求（每条用户消息一次）
type ConsumeRequest struct {
	UserId         string `json:"user_id"`
	ConversationId string `json:"conversation_id"`
}

// ConsumeReply 额度消费响应
type ConsumeReply struct {
	Allowed     bool   `json:"allowed"`
	FreeLeft    int32  `json:"free_left"`
	CreditsLeft int64  `json:"credits_left"`
	Reason      string `json:"reason"`
}

// CreateAccountRequest 创建账户请求
type CreateAccountRequest struct {
	UserId string `json:"user_id"`
}

// GetAccountRequest 获取账户请求
type GetAccountRequest struct {
	UserId string `json:"user_id"`
}

// AccountReply 账户信息
type AccountReply struct {
	UserId           string    `json:"user_id"`
	Plan             string    `json:"plan"`
	FreeTierLimit    int32     `json:"free_tier_limit"`
	FreeMessagesUsed int32     `json:"free_messages_used"`
	FreeLeft         int32     `json:"free_left"`
	CreditsLeft      int64     `json:"credits_left"`
	CreatedAt        time.Time `json:"created_at"`
}

// ListPaymentsRequest 入账记录分页请求
type ListPaymentsRequest struct {
	UserId   string `json:"user_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

// Payment 入账记录
type Payment struct {
	Id        string    `json:"id"`
	SessionId string    `json:"session_id"`
	PackId    string    `json:"pack_id"`
	Credits   int64     `json:"credits"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPaymentsReply 入账记录分页响应
type ListPaymentsReply struct {
	Total    int64      `json:"total"`
	Payments []*Payment `json:"payments"`
}

// ListUsageRequest 用量记录分页请求
type ListUsageRequest struct {
	UserId   string `json:"user_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

// UsageRecord 用量记录
type UsageRecord struct {
	Id             string    `json:"id"`
	ConversationId string    `json:"conversation_id"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListUsageReply 用量记录分页响应
type ListUsageReply struct {
	Total   int64          `json:"total"`
	Records []*UsageRecord `json:"records"`
}

// GrantCreditsRequest 管理员发放额度请求
type GrantCreditsRequest struct {
	UserId    string `json:"user_id"`
	Credits   int64  `json:"credits"`
	Reference string `json:"reference"`
}

// GrantCreditsReply 管理员发放额度响应
type GrantCreditsReply struct {
	Result string `json:"result"`
}

package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationCreditsServiceCreateCheckout = "/credits.v1.CreditsService/CreateCheckout"
	OperationCreditsServiceListPackages   = "/credits.v1.CreditsService/ListPackages"
	OperationCreditsServiceConsume        = "/credits.v1.CreditsService/Consume"
	OperationCreditsServiceCreateAccount  = "/credits.v1.CreditsService/CreateAccount"
	OperationCreditsServiceGetAccount     = "/credits.v1.CreditsService/GetAccount"
	OperationCreditsServiceListPayments   = "/credits.v1.CreditsService/ListPayments"
	OperationCreditsServiceListUsage      = "/credits.v1.CreditsService/ListUsage"
	OperationCreditsServiceGrantCredits   = "/credits.v1.CreditsService/GrantCredits"
)

// CreditsServiceHTTPServer 额度服务 HTTP 接口
type CreditsServiceHTTPServer interface {
	CreateCheckout(context.Context, *CreateCheckoutRequest) (*CreateCheckoutReply, error)
	ListPackages(context.Context, *ListPackagesRequest) (*ListPackagesReply, error)
	Consume(context.Context, *ConsumeRequest) (*ConsumeReply, error)
	CreateAccount(context.Context, *CreateAccountRequest) (*AccountReply, error)
	GetAccount(context.Context, *GetAccountRequest) (*AccountReply, error)
	ListPayments(context.Context, *ListPaymentsRequest) (*ListPaymentsReply, error)
	ListUsage(context.Context, *ListUsageRequest) (*ListUsageReply, error)
	GrantCredits(context.Context, *GrantCreditsRequest) (*GrantCreditsReply, error)
}

// RegisterCreditsServiceHTTPServer 注册额度服务路由
func RegisterCreditsServiceHTTPServer(s *http.Server, srv CreditsServiceHTTPServer) {
	r := s.Route("/")
	r.POST("/v1/checkout", _CreditsService_CreateCheckout_HTTP_Handler(srv))
	r.GET("/v1/packages", _CreditsService_ListPackages_HTTP_Handler(srv))
	r.POST("/v1/quota/consume", _CreditsService_Consume_HTTP_Handler(srv))
	r.POST("/v1/accounts", _CreditsService_CreateAccount_HTTP_Handler(srv))
	r.GET("/v1/accounts/{user_id}", _CreditsService_GetAccount_HTTP_Handler(srv))
	r.GET("/v1/accounts/{user_id}/payments", _CreditsService_ListPayments_HTTP_Handler(srv))
	r.GET("/v1/accounts/{user_id}/usage", _CreditsService_ListUsage_HTTP_Handler(srv))
	r.POST("/v1/admin/credits", _CreditsService_GrantCredits_HTTP_Handler(srv))
}

func _CreditsService_CreateCheckout_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in CreateCheckoutRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceCreateCheckout)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateCheckout(ctx, req.(*CreateCheckoutRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*CreateCheckoutReply))
	}
}

func _CreditsService_ListPackages_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListPackagesRequest
		http.SetOperation(ctx, OperationCreditsServiceListPackages)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListPackages(ctx, req.(*ListPackagesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListPackagesReply))
	}
}

func _CreditsService_Consume_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ConsumeRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceConsume)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Consume(ctx, req.(*ConsumeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ConsumeReply))
	}
}

func _CreditsService_CreateAccount_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in CreateAccountRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceCreateAccount)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateAccount(ctx, req.(*CreateAccountRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*AccountReply))
	}
}

func _CreditsService_GetAccount_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetAccountRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceGetAccount)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetAccount(ctx, req.(*GetAccountRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*AccountReply))
	}
}

func _CreditsService_ListPayments_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListPaymentsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceListPayments)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListPayments(ctx, req.(*ListPaymentsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListPaymentsReply))
	}
}

func _CreditsService_ListUsage_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListUsageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceListUsage)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListUsage(ctx, req.(*ListUsageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListUsageReply))
	}
}

func _CreditsService_GrantCredits_HTTP_Handler(srv CreditsServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GrantCreditsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCreditsServiceGrantCredits)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GrantCredits(ctx, req.(*GrantCreditsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GrantCreditsReply))
	}
}

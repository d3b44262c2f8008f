package context

import (
	"context"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
)

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, constant.PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (*model.Principal, bool) {
	p, ok := ctx.Value(constant.PrincipalKey).(*model.Principal)
	return p, ok && p != nil
}

func GetUserID(ctx context.Context) (uint64, bool) {
	p, ok := GetPrincipal(ctx)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, constant.ClientIPKey, ip)
}

func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(constant.ClientIPKey).(string)
	return ip, ok && ip != ""
}

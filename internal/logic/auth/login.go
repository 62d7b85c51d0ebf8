package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/internal/userstore"
	"github.com/VinukaThejana/auth-rs/pb/authpb"
)

type LoginLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *LoginLogic) Login(in *authpb.LoginRequest) (*authpb.LoginResponse, error) {
	user, err := l.svcCtx.Users.GetByEmailOrUsername(l.ctx, in.Credential)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.IncorrectCredentials, "invalid credential or password"))
		}
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	if !user.Password.Valid {
		return nil, apperr.ToStatus(apperr.New(apperr.InvalidProvider, "account has no password; sign in with its linked provider"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(in.Password)); err != nil {
		return nil, apperr.ToStatus(apperr.New(apperr.IncorrectCredentials, "invalid credential or password"))
	}

	if user.IsTwoFactorEnabled {
		if in.OTP == "" {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPRequired, "otp is required for this account"))
		}
		if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, fmt.Sprintf("twofactor:otp:%s", in.OTP)); err != nil {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
	}

	triple, err := l.svcCtx.Factory.Issue(l.ctx, user.ID, profileOf(user))
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "issue tokens: %v", err))
	}

	rjti := triple.Refresh.Claims.JTI()
	loginAt := triple.Refresh.Claims.IAT()
	exp := triple.Refresh.Claims.Exp()
	userID := user.ID
	ip := in.IPAddress
	ua := in.UserAgent

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := l.svcCtx.Sessions.Create(bgCtx, rjti, userID, ip, ua, loginAt, exp); err != nil {
			logx.Errorf("create session row for rjti=%s failed, revoking refresh binding: %v", rjti, err)
			if delErr := l.svcCtx.Refresh.Delete(bgCtx, rjti); delErr != nil {
				logx.Errorf("compensating refresh delete for rjti=%s also failed: %v", rjti, delErr)
			}
			return
		}

		if err := l.svcCtx.Sessions.DeleteExpired(bgCtx, userID, l.svcCtx.Clock.Now()); err != nil {
			logx.Errorf("best-effort DeleteExpired for user=%s failed: %v", userID, err)
		}
	}()

	return &authpb.LoginResponse{
		Refresh: authpb.Token{Token: triple.Refresh.Token, Expires: uint64(triple.Refresh.Exp.Unix())},
		Access:  authpb.Token{Token: triple.Access.Token, Expires: uint64(triple.Access.Exp.Unix())},
		Session: authpb.Token{Token: triple.Session.Token, Expires: uint64(triple.Session.Exp.Unix())},
	}, nil
}

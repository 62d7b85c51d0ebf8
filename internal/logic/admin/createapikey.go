package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/apperr"
	"github.com/VinukaThejana/auth-rs/internal/models"
	"github.com/VinukaThejana/auth-rs/internal/token/cache"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

type CreateApiKeyLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateApiKeyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateApiKeyLogic {
	return &CreateApiKeyLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// CreateApiKey returns the one-time secret alongside its ULID identifier;
// only a bcrypt hash of the secret is persisted, so this is the only
// point in the system the cleartext secret is ever visible.
func (l *CreateApiKeyLogic) CreateApiKey(in *adminpb.CreateApiKeyRequest) (*adminpb.CreateApiKeyResponse, error) {
	if _, err := l.svcCtx.Cache.ConsumeOTP(l.ctx, otpNamespace(in.Email)); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, apperr.ToStatus(apperr.New(apperr.OTPInvalid, "otp is invalid or expired"))
		}
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "consume otp: %v", err))
	}

	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "generate api secret: %v", err))
	}
	secret := hex.EncodeToString(secretBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.ToStatus(apperr.Newf(apperr.Other, "hash api secret: %v", err))
	}

	id := l.svcCtx.IDs.NewID()
	now := l.svcCtx.Clock.Now()
	row := &models.AdminAPIKey{
		ID:          id,
		Key:         string(hash),
		Description: in.Description,
		OwnedBy:     in.Email,
		CreatedAt:   now,
		LastUsed:    now,
	}
	if err := l.svcCtx.Admins.CreateAPIKey(l.ctx, row); err != nil {
		return nil, apperr.ToStatus(apperr.FromDatabaseError(err))
	}

	return &adminpb.CreateApiKeyResponse{ApiKey: id, ApiSecret: secret}, nil
}

package server

import (
	"context"

	"github.com/VinukaThejana/auth-rs/internal/logic/admin"
	"github.com/VinukaThejana/auth-rs/internal/svc"
	"github.com/VinukaThejana/auth-rs/pb/adminpb"
)

// AdminServiceServer implements adminpb.AdminServer by constructing the
// matching per-call Logic struct against the shared ServiceContext.
type AdminServiceServer struct {
	svcCtx *svc.ServiceContext
}

func NewAdminServiceServer(svcCtx *svc.ServiceContext) *AdminServiceServer {
	return &AdminServiceServer{svcCtx: svcCtx}
}

func (s *AdminServiceServer) SendEmail(ctx context.Context, in *adminpb.SendEmailRequest) (*adminpb.SendEmailResponse, error) {
	return admin.NewSendEmailLogic(ctx, s.svcCtx).SendEmail(in)
}

func (s *AdminServiceServer) CreateAdmin(ctx context.Context, in *adminpb.CreateAdminRequest) (*adminpb.CreateAdminResponse, error) {
	return admin.NewCreateAdminLogic(ctx, s.svcCtx).CreateAdmin(in)
}

func (s *AdminServiceServer) DeleteAdmin(ctx context.Context, in *adminpb.DeleteAdminRequest) (*adminpb.DeleteAdminResponse, error) {
	return admin.NewDeleteAdminLogic(ctx, s.svcCtx).DeleteAdmin(in)
}

func (s *AdminServiceServer) ListApiKeys(ctx context.Context, in *adminpb.ListApiKeysRequest) (*adminpb.ListApiKeysResponse, error) {
	return admin.NewListApiKeysLogic(ctx, s.svcCtx).ListApiKeys(in)
}

func (s *AdminServiceServer) CreateApiKey(ctx context.Context, in *adminpb.CreateApiKeyRequest) (*adminpb.CreateApiKeyResponse, error) {
	return admin.NewCreateApiKeyLogic(ctx, s.svcCtx).CreateApiKey(in)
}

func (s *AdminServiceServer) DeleteApiKey(ctx context.Context, in *adminpb.DeleteApiKeyRequest) (*adminpb.DeleteApiKeyResponse, error) {
	return admin.NewDeleteApiKeyLogic(ctx, s.svcCtx).DeleteApiKey(in)
}

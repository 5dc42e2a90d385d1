package ports

import (
	"context"

	"github.com/firmbooks/firmbooks_backend/internal/dto"
)

// StatementSvcFacade assembles merged partner statements from the firm and
// partner transaction streams.
type StatementSvcFacade interface {
	GetPartnerStatement(ctx context.Context, partnerID string) (*dto.PartnerStatementResponse, error)
}

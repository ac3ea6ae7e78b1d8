package rawdata

import "context"

type Repository interface {
	Upsert(ctx context.Context, item Payload) error
	GetByEntity(ctx context.Context, source, entityType, entityKey string) (Payload, bool, error)
}

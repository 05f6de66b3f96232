package recipe

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Lifecycle
	Load(ctx context.Context) error
	State() State

	// Browsing
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Facets(ctx context.Context) (FacetsOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
}

package port

//go:generate mockgen -source=datasource.go -destination=mocks/mock_datasource.go -package=mocks

import (
	"context"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

// RowLoader loads rows for one family of data-source references.
// Implementations must be safe for concurrent use.
type RowLoader interface {
	// Accepts reports whether the loader handles the reference.
	Accepts(ref entity.DataSourceRef) bool
	// Load reads all rows of the source. It is called at most once per
	// successful load of a given reference key.
	Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error)
}

package pipeline

import "github.com/kvoronov/metric_etl/internal/domain"

// TableLoader writes the final table to its destination.
type TableLoader interface {
	Load(table *domain.Table) error
}

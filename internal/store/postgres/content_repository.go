package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Dafi-web/events-sub000/domain"
)

// ContentRepository checks the existence of content items in the tables
// owned by the content modules. Ids are compared as text so both integer
// and uuid keyed tables work.
type ContentRepository struct {
	db       *gorm.DB
	tables   map[domain.ContentType]string
	idColumn string
}

func NewContentRepository(db *gorm.DB, tables map[domain.ContentType]string, idColumn string) *ContentRepository {
	if idColumn == "" {
		idColumn = "id"
	}
	return &ContentRepository{
		db:       db,
		tables:   tables,
		idColumn: idColumn,
	}
}

func (r *ContentRepository) Exists(ctx context.Context, ref domain.ContentRef) (bool, error) {
	table, ok := r.tables[ref.Type]
	if !ok || table == "" {
		return false, fmt.Errorf("no table configured for content type %q", ref.Type)
	}

	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE CAST(%s AS text) = ?)",
		quoteQualifiedIdentifier(table),
		pq.QuoteIdentifier(r.idColumn),
	)

	var exists bool
	if err := r.db.WithContext(ctx).Raw(query, ref.ID).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// quoteQualifiedIdentifier quotes each part of a possibly schema qualified
// table name.
func quoteQualifiedIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

package postgres

import (
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/Dafi-web/events-sub000/domain"
)

var (
	sortableColumns = []string{"updated_at", "created_at"}
	sortDirections  = []string{"asc", "desc"}
)

// addOrderBy applies an order expression in the form "column[:direction]".
// Unknown columns are ignored.
func addOrderBy(db *gorm.DB, orderBy string) *gorm.DB {
	if orderBy == "" {
		return db
	}

	column, order, _ := strings.Cut(orderBy, ":")
	column = strings.ToLower(column)
	if !slices.Contains(sortableColumns, column) {
		return db
	}
	if slices.Contains(sortDirections, strings.ToLower(order)) {
		return db.Order(fmt.Sprintf(`"%s" %s`, column, order))
	}
	return db.Order(column)
}

func statusesToStrings(statuses []domain.CommentStatus) []string {
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, string(s))
	}
	return result
}

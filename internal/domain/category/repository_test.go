package category

import (
	"strings"
	"testing"
)

// The provider and favorite repositories join "LEFT JOIN categories c";
// lookups here must hit that same table.
func TestQueriesUseCategoriesTable(t *testing.T) {
	for name, query := range map[string]string{
		"ListActive": listActiveQuery,
		"GetBySlug":  getBySlugQuery,
	} {
		if !strings.Contains(query, "FROM categories") {
			t.Errorf("%s does not read from the categories table: %s", name, query)
		}
		if strings.Contains(query, "service_categories") {
			t.Errorf("%s references a nonexistent service_categories table", name)
		}
	}
}

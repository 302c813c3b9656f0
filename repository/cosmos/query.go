package cosmos

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/todokit/backend/repository"
)

var sortColumns = map[string]string{
	"createdAt": "c.createdAt",
	"dueDate":   "c.dueDate",
	"priority":  "c.priority",
}

// buildListQuery translates a TodoFilter into a parameterized Cosmos SQL
// query. Recognized filter fields map one-to-one onto query clauses, combined
// with AND; anything else is ignored. Ascending order is the default.
func buildListQuery(filter repository.TodoFilter) (string, []azcosmos.QueryParameter) {
	var builder strings.Builder
	builder.WriteString("SELECT * FROM c")

	var (
		conditions []string
		parameters []azcosmos.QueryParameter
	)

	if filter.Status != "" {
		conditions = append(conditions, "c.status = @status")
		parameters = append(parameters, azcosmos.QueryParameter{Name: "@status", Value: string(filter.Status)})
	}
	if filter.Priority != "" {
		conditions = append(conditions, "c.priority = @priority")
		parameters = append(parameters, azcosmos.QueryParameter{Name: "@priority", Value: string(filter.Priority)})
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}

	if column, ok := sortColumns[filter.SortBy]; ok {
		direction := "ASC"
		if filter.Order == "desc" {
			direction = "DESC"
		}
		builder.WriteString(" ORDER BY ")
		builder.WriteString(column)
		builder.WriteString(" ")
		builder.WriteString(direction)
	}

	return builder.String(), parameters
}

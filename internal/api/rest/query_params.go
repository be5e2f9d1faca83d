package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/artfolio-api/internal/api/shared/constants"
	"github.com/artfolio/artfolio-api/internal/domain"
)

// validOrderBy holds the upstream sort fields the listing endpoint supports
var validOrderBy = map[string]bool{
	"sale_date":  true,
	"sale_price": true,
	"sale_count": true,
}

// CollectionQuery holds the parsed listing parameters
type CollectionQuery struct {
	OrderBy        string
	OrderDirection string
}

// ParseCollectionQuery parses and validates the order_by / order_direction
// query parameters, applying defaults when absent
func ParseCollectionQuery(c *gin.Context) (CollectionQuery, error) {
	query := CollectionQuery{
		OrderBy:        c.DefaultQuery("order_by", constants.DEFAULT_ORDER_BY),
		OrderDirection: c.DefaultQuery("order_direction", constants.DEFAULT_ORDER_DIRECTION),
	}

	if !validOrderBy[query.OrderBy] {
		return query, fmt.Errorf("unsupported order_by: %s", query.OrderBy)
	}
	if !domain.Order(query.OrderDirection).Valid() {
		return query, fmt.Errorf("order_direction must be \"asc\" or \"desc\"")
	}

	return query, nil
}

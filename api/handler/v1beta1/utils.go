package v1beta1

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidMinFlags = errors.New("min_flags must be a non-negative integer")

// parseCommaSeparatedValues splits comma-separated string values into arrays
// This handles cases where query parameters come as "value1,value2,value3"
// instead of repeated parameters "param=value1&param=value2&param=value3"
func parseCommaSeparatedValues(values []string) []string {
	if len(values) == 0 {
		return values
	}

	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}

func parseBoolQuery(c *gin.Context, key string) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}

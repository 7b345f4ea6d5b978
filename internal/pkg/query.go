package pkg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aegisx/platform/internal/domain"
)

const (
	defaultPage      = 1
	defaultLimit     = 20
	fallbackMaxLimit = 100
)

// reservedParams lists query parameter names used for pagination, sorting,
// search, and projection, not for filtering.
var reservedParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"sort":   true,
	"search": true,
	"fields": true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseListQuery extracts pagination, sorting, search, projection, and
// filtering parameters from the request query string. The limit is clamped
// to maxLimit (or a fallback cap when maxLimit is zero). Malformed sort
// pairs and invalid field names are dropped here; unknown-but-well-formed
// keys survive so the repository's allow-lists decide their fate.
func ParseListQuery(c *gin.Context, maxLimit int) domain.ListQuery {
	if maxLimit <= 0 {
		maxLimit = fallbackMaxLimit
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sort := ParseSortKeys(c.Query("sort"))

	var fields []string
	if raw := c.Query("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if f != "" && validFieldName.MatchString(f) {
				fields = append(fields, f)
			}
		}
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if !validFieldName.MatchString(key) {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	return domain.ListQuery{
		Page:    page,
		Limit:   limit,
		Sort:    sort,
		Search:  strings.TrimSpace(c.Query("search")),
		Fields:  fields,
		Filters: filters,
	}
}

// ParseSortKeys parses a comma-separated "field:direction" list in order.
// A pair without a direction defaults to ascending; pairs with an invalid
// direction or field name are dropped.
func ParseSortKeys(raw string) []domain.SortKey {
	if raw == "" {
		return nil
	}

	var keys []domain.SortKey
	for _, pair := range strings.Split(raw, ",") {
		field, direction, found := strings.Cut(pair, ":")
		field = strings.TrimSpace(field)
		direction = strings.TrimSpace(strings.ToLower(direction))
		if !found {
			direction = "asc"
		}

		if direction != "asc" && direction != "desc" {
			continue
		}
		if !validFieldName.MatchString(field) {
			continue
		}

		keys = append(keys, domain.SortKey{Field: field, Direction: direction})
	}
	return keys
}

// IntersectFields returns the subset of requested fields present in allowed,
// preserving request order, along with the fields that were refused. An
// empty request returns nil (no projection). A nil allow-list means no
// restriction is declared and the request passes through unchanged.
func IntersectFields(requested, allowed []string) (safe, refused []string) {
	if len(requested) == 0 {
		return nil, nil
	}
	if allowed == nil {
		return requested, nil
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}

	for _, f := range requested {
		if allowedSet[f] {
			safe = append(safe, f)
		} else {
			refused = append(refused, f)
		}
	}
	return safe, refused
}

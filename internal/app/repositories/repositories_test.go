package repositories

import "testing"

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":       "name",
		"created_at": "created_at",
	}

	cases := []struct {
		orderBy   string
		direction string
		want      string
	}{
		{"name", "asc", "name ASC"},
		{"name", "desc", "name DESC"},
		{"name", "DESC", "name DESC"},
		{"created_at", "", "created_at ASC"},
		{"", "", "name ASC"},
		// Values outside the allow-list fall back to the default column.
		{"password; DROP TABLE subjects", "desc", "name DESC"},
		{"unknown", "sideways", "name ASC"},
	}

	for _, tc := range cases {
		got := orderClause(allowed, "name", tc.orderBy, tc.direction)
		if got != tc.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tc.orderBy, tc.direction, got, tc.want)
		}
	}
}

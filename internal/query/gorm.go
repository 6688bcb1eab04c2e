package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ApplyClause translates a clause tree onto a GORM query builder.
func ApplyClause(db *gorm.DB, c Clause) *gorm.DB {
	sql, args := buildSQL(c)
	if sql == "" {
		return db
	}
	return db.Where(sql, args...)
}

// ApplyOrder appends ORDER BY terms for a sort descriptor.
func ApplyOrder(db *gorm.DB, orders []Order) *gorm.DB {
	for _, o := range orders {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", o.Field, dir))
	}
	return db
}

func buildSQL(c Clause) (string, []any) {
	switch v := c.(type) {
	case And:
		return joinSQL(v.Clauses, " AND ", "1=1")
	case Or:
		return joinSQL(v.Clauses, " OR ", "1=0")
	case Eq:
		return fmt.Sprintf("%s = ?", v.Field), []any{v.Value}
	case Range:
		var parts []string
		var args []any
		if v.Min != nil {
			parts = append(parts, fmt.Sprintf("%s >= ?", v.Field))
			args = append(args, *v.Min)
		}
		if v.Max != nil {
			parts = append(parts, fmt.Sprintf("%s <= ?", v.Field))
			args = append(args, *v.Max)
		}
		if len(parts) == 0 {
			return "", nil
		}
		return strings.Join(parts, " AND "), args
	case Contains:
		return fmt.Sprintf("LOWER(%s) LIKE ?", v.Field),
			[]any{"%" + strings.ToLower(v.Value) + "%"}
	case After:
		return fmt.Sprintf("%s > ?", v.Field), []any{v.Value}
	}
	return "", nil
}

func joinSQL(clauses []Clause, sep, empty string) (string, []any) {
	if len(clauses) == 0 {
		return empty, nil
	}
	var parts []string
	var args []any
	for _, c := range clauses {
		sql, a := buildSQL(c)
		if sql == "" {
			continue
		}
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return empty, nil
	}
	return strings.Join(parts, sep), args
}

package schemasync

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

var ownerPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_$#]*$`)

// ValidateOwner rejects owner names that are not plain Oracle identifiers.
func ValidateOwner(owner string) error {
	if !ownerPattern.MatchString(owner) {
		return fmt.Errorf("%w: invalid schema owner %q", erpbrain.ErrInvalidConfig, owner)
	}
	return nil
}

// quote doubles single quotes so s can sit inside a SQL string literal.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// TableListSQL lists the tables of owner. limit > 0 caps the row count
// with ROWNUM, which Oracle applies before the ORDER BY.
func TableListSQL(owner string, limit int) string {
	sql := fmt.Sprintf(`
    SELECT table_name
    FROM all_tables
    WHERE owner = '%s'
    `, quote(owner))
	if limit > 0 {
		sql += fmt.Sprintf(" AND ROWNUM <= %d", limit)
	}
	return sql + " ORDER BY table_name"
}

// ColumnsSQL lists the columns of one table in column_id order.
func ColumnsSQL(owner, table string) string {
	return fmt.Sprintf(`
    SELECT
        column_name,
        data_type,
        data_length,
        data_precision,
        data_scale,
        nullable,
        column_id
    FROM all_tab_columns
    WHERE owner = '%s' AND table_name = '%s'
    ORDER BY column_id
    `, quote(owner), quote(table))
}

// PrimaryUniqueSQL lists the primary key and unique constraint columns of one table.
func PrimaryUniqueSQL(owner, table string) string {
	return fmt.Sprintf(`
    SELECT
        c.constraint_name,
        c.constraint_type,
        cc.column_name,
        cc.position
    FROM all_constraints c
    JOIN all_cons_columns cc ON c.owner = cc.owner
        AND c.constraint_name = cc.constraint_name
        AND c.table_name = cc.table_name
    WHERE c.owner = '%s'
        AND c.table_name = '%s'
        AND c.constraint_type IN ('P', 'U')
    ORDER BY c.constraint_name, cc.position
    `, quote(owner), quote(table))
}

// ForeignKeysSQL lists the referencing foreign key columns of one table
// together with the columns they point at.
func ForeignKeysSQL(owner, table string) string {
	return fmt.Sprintf(`
    SELECT
        c.constraint_name,
        cc.column_name,
        cc.position,
        r.owner AS r_owner,
        r.table_name AS r_table_name,
        rc.column_name AS r_column_name
    FROM all_constraints c
    JOIN all_cons_columns cc ON c.owner = cc.owner
        AND c.constraint_name = cc.constraint_name
        AND c.table_name = cc.table_name
    JOIN all_constraints r ON c.r_owner = r.owner
        AND c.r_constraint_name = r.constraint_name
    JOIN all_cons_columns rc ON r.owner = rc.owner
        AND r.constraint_name = rc.constraint_name
        AND r.table_name = rc.table_name
        AND rc.position = cc.position
    WHERE c.owner = '%s'
        AND c.table_name = '%s'
        AND c.constraint_type = 'R'
    ORDER BY c.constraint_name, cc.position
    `, quote(owner), quote(table))
}

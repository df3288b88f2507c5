package schemasync

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

func TestValidateOwner(t *testing.T) {
	valid := []string{"SGDGROUP", "hr", "APP_2", "X$Y#"}
	for _, o := range valid {
		if err := ValidateOwner(o); err != nil {
			t.Errorf("ValidateOwner(%q) = %v", o, err)
		}
	}

	invalid := []string{"", "2FAST", "A B", "A'B", "A;DROP", "_X"}
	for _, o := range invalid {
		if err := ValidateOwner(o); !errors.Is(err, erpbrain.ErrInvalidConfig) {
			t.Errorf("ValidateOwner(%q) = %v, want ErrInvalidConfig", o, err)
		}
	}
}

func TestTableListSQL(t *testing.T) {
	sql := TableListSQL("SGDGROUP", 0)
	if !strings.Contains(sql, "WHERE owner = 'SGDGROUP'") || strings.Contains(sql, "ROWNUM") {
		t.Errorf("unexpected SQL %q", sql)
	}
	if !strings.HasSuffix(sql, " ORDER BY table_name") {
		t.Errorf("SQL should end with ORDER BY, got %q", sql)
	}

	limited := TableListSQL("SGDGROUP", 10)
	if !strings.Contains(limited, " AND ROWNUM <= 10 ORDER BY table_name") {
		t.Errorf("unexpected SQL %q", limited)
	}
}

func TestTableQueries_QuoteTableName(t *testing.T) {
	builders := map[string]func(string, string) string{
		"columns":        ColumnsSQL,
		"primary_unique": PrimaryUniqueSQL,
		"foreign_keys":   ForeignKeysSQL,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			sql := build("SGDGROUP", "O'BRIEN")
			if !strings.Contains(sql, "'O''BRIEN'") {
				t.Errorf("table name not quoted in %q", sql)
			}
			if !strings.Contains(sql, "'SGDGROUP'") {
				t.Errorf("owner missing in %q", sql)
			}
		})
	}

	if !strings.Contains(PrimaryUniqueSQL("A", "B"), "constraint_type IN ('P', 'U')") {
		t.Error("primary/unique filter missing")
	}
	if !strings.Contains(ForeignKeysSQL("A", "B"), "constraint_type = 'R'") {
		t.Error("foreign key filter missing")
	}
}

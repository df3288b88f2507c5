package plsql

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceUnitIdentity is the UUID v5 namespace for PL/SQL unit IDs.
var NamespaceUnitIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("erpbrain/plsql-unit/v1"))

// UnitID derives the stable identity of a unit from its qualified name.
// Names are compared case-insensitively, matching PL/SQL identifiers.
//
//   - "ORDERS.WHEN-VALIDATE-ITEM" -> uuid_v5(namespace, "orders.when-validate-item")
func UnitID(name string) uuid.UUID {
	return uuid.NewSHA1(NamespaceUnitIdentity, []byte(strings.ToLower(name)))
}

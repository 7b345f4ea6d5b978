// Package policy is the central access-control table: which permissions each
// role holds, and which output fields each role may request per resource.
// Every handler consults this table instead of carrying its own inline maps.
package policy

import (
	"slices"

	"github.com/aegisx/platform/internal/domain"
)

// Permission actions. A permission string is "{resource}:{action}".
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// rolePermissions maps each role to the permission strings it holds.
// Admin is resolved separately: it holds every permission.
var rolePermissions = map[string][]string{
	domain.RolePublic: {
		"companies:read",
		"locations:read",
	},
	domain.RoleUser: {
		"companies:read",
		"locations:read", "locations:create", "locations:update",
		"purchase-orders:read", "purchase-orders:create", "purchase-orders:update",
		"notifications:read", "notifications:create", "notifications:update",
		"error-logs:create",
	},
}

// resourceFields maps resource name and role to the output fields that role
// may request. Lookups for unknown roles fall back to the public set; a
// resource with no entry for a role inherits the public entry.
var resourceFields = map[string]map[string][]string{
	"companies": {
		domain.RolePublic: {"id", "name", "created_at"},
		domain.RoleUser:   {"id", "name", "tax_id", "email", "phone", "address", "is_active", "created_at", "updated_at"},
		domain.RoleAdmin:  {"id", "name", "tax_id", "email", "phone", "address", "is_active", "created_at", "updated_at"},
	},
	"locations": {
		domain.RolePublic: {"id", "name", "created_at"},
		domain.RoleUser:   {"id", "name", "code", "company_id", "address", "is_active", "created_at", "updated_at"},
		domain.RoleAdmin:  {"id", "name", "code", "company_id", "address", "is_active", "created_at", "updated_at"},
	},
	"purchase-orders": {
		domain.RolePublic: {"id", "created_at"},
		domain.RoleUser:   {"id", "order_number", "vendor_id", "location_id", "status", "total_amount", "notes", "created_at", "updated_at"},
		domain.RoleAdmin:  {"id", "order_number", "vendor_id", "location_id", "status", "total_amount", "notes", "created_at", "updated_at"},
	},
	"notifications": {
		domain.RolePublic: {"id", "created_at"},
		domain.RoleUser:   {"id", "token", "title", "body", "channel", "recipient", "status", "read_at", "created_at", "updated_at"},
		domain.RoleAdmin:  {"id", "token", "title", "body", "channel", "recipient", "status", "read_at", "created_at", "updated_at"},
	},
	"error-logs": {
		domain.RolePublic: {"id", "created_at"},
		domain.RoleUser:   {"id", "level", "message", "source", "created_at"},
		domain.RoleAdmin:  {"id", "level", "message", "source", "request_id", "stack", "created_at", "updated_at"},
	},
	"users": {
		domain.RolePublic: {"id"},
		domain.RoleUser:   {"id", "name", "created_at"},
		domain.RoleAdmin:  {"id", "name", "email", "role", "created_at", "updated_at"},
	},
}

// NormalizeRole maps unknown role names to public.
func NormalizeRole(role string) string {
	switch role {
	case domain.RoleUser, domain.RoleAdmin:
		return role
	default:
		return domain.RolePublic
	}
}

// HasPermission reports whether the role holds the given permission string.
// Admin holds all permissions.
func HasPermission(role, permission string) bool {
	role = NormalizeRole(role)
	if role == domain.RoleAdmin {
		return true
	}
	return slices.Contains(rolePermissions[role], permission)
}

// AllowedFields returns the output-field allow-list for the given resource
// and role. Unknown roles and roles without a declared entry fall back to
// the resource's public set. An unknown resource yields nil, meaning no
// projection restriction is declared.
func AllowedFields(resource, role string) []string {
	byRole, ok := resourceFields[resource]
	if !ok {
		return nil
	}
	role = NormalizeRole(role)
	if fields, ok := byRole[role]; ok {
		return fields
	}
	return byRole[domain.RolePublic]
}

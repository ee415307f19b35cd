package policy

import (
	"pos-backend-api/models"
)

// Resource and Action name the things the API exposes and what can be
// done to them. Every role/ownership decision in the system lives in the
// rules table below instead of being re-checked ad hoc in each handler.
type Resource string

type Action string

const (
	ResourceUsers   Resource = "users"
	ResourceMenu    Resource = "menu"
	ResourceOrders  Resource = "orders"
	ResourceReports Resource = "reports"
)

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	// Report actions, one per report endpoint
	ActionDailySales         Action = "daily-sales"
	ActionMenuSales          Action = "menu-sales"
	ActionCashierPerformance Action = "cashier-performance"
	ActionMyPerformance      Action = "my-performance"
	ActionTodaySummary       Action = "today-summary"
	ActionTopSelling         Action = "top-selling"
	ActionRevenueByType      Action = "revenue-by-type"
)

// Rule grants a role access to one resource/action pair. OwnOnly means the
// grant is scoped to rows the caller created (or, for users, their own row).
type Rule struct {
	Resource Resource
	Action   Action
	Role     models.UserRole
	OwnOnly  bool
}

// rules is the authoritative access table
var rules = []Rule{
	// Users: admins see everyone, cashiers only themselves
	{ResourceUsers, ActionList, models.RoleAdmin, false},
	{ResourceUsers, ActionRead, models.RoleAdmin, false},
	{ResourceUsers, ActionRead, models.RoleCashier, true},

	// Menu: everyone reads, only admins write
	{ResourceMenu, ActionList, models.RoleAdmin, false},
	{ResourceMenu, ActionList, models.RoleCashier, false},
	{ResourceMenu, ActionRead, models.RoleAdmin, false},
	{ResourceMenu, ActionRead, models.RoleCashier, false},
	{ResourceMenu, ActionCreate, models.RoleAdmin, false},
	{ResourceMenu, ActionUpdate, models.RoleAdmin, false},
	{ResourceMenu, ActionDelete, models.RoleAdmin, false},

	// Orders: both roles sell; cashiers only ever see their own tickets
	{ResourceOrders, ActionCreate, models.RoleAdmin, false},
	{ResourceOrders, ActionCreate, models.RoleCashier, false},
	{ResourceOrders, ActionList, models.RoleAdmin, false},
	{ResourceOrders, ActionList, models.RoleCashier, true},
	{ResourceOrders, ActionRead, models.RoleAdmin, false},
	{ResourceOrders, ActionRead, models.RoleCashier, true},

	// Reports: management reports are admin-only, personal ones own-scoped
	{ResourceReports, ActionDailySales, models.RoleAdmin, false},
	{ResourceReports, ActionMenuSales, models.RoleAdmin, false},
	{ResourceReports, ActionCashierPerformance, models.RoleAdmin, false},
	{ResourceReports, ActionMyPerformance, models.RoleCashier, true},
	{ResourceReports, ActionTodaySummary, models.RoleAdmin, false},
	{ResourceReports, ActionTodaySummary, models.RoleCashier, true},
	{ResourceReports, ActionTopSelling, models.RoleAdmin, false},
	{ResourceReports, ActionRevenueByType, models.RoleAdmin, false},
}

type ruleKey struct {
	Resource Resource
	Action   Action
	Role     models.UserRole
}

// Build a lookup map for O(1) evaluation
var ruleMap = func() map[ruleKey]Rule {
	m := make(map[ruleKey]Rule, len(rules))
	for _, r := range rules {
		m[ruleKey{r.Resource, r.Action, r.Role}] = r
	}
	return m
}()

// Allow evaluates the table for one request. ownOnly is meaningful only
// when allowed is true.
func Allow(role models.UserRole, resource Resource, action Action) (allowed, ownOnly bool) {
	r, ok := ruleMap[ruleKey{resource, action, role}]
	if !ok {
		return false, false
	}
	return true, r.OwnOnly
}

// AllowedRoles returns the roles granted a resource/action pair, for
// error messages
func AllowedRoles(resource Resource, action Action) []models.UserRole {
	var roles []models.UserRole
	seen := map[models.UserRole]bool{}
	for _, r := range rules {
		if r.Resource == resource && r.Action == action && !seen[r.Role] {
			roles = append(roles, r.Role)
			seen[r.Role] = true
		}
	}
	return roles
}

package domain

// Action is a mutating (or page-level) operation subject to role checks.
type Action string

const (
	ActionCreateTransaction       Action = "transaction:create"
	ActionApproveTransaction      Action = "transaction:approve"
	ActionRejectTransaction       Action = "transaction:reject"
	ActionEditApprovedTransaction Action = "transaction:edit_approved"
	ActionDeleteAnyTransaction    Action = "transaction:delete_any"
	ActionCreateInvoice           Action = "invoice:create"
	ActionUpdateInvoice           Action = "invoice:update"
	ActionCreateClient            Action = "client:create"
	ActionManageCategories        Action = "category:manage"
	ActionManageUsers             Action = "user:manage"
	ActionAccessSettings          Action = "settings:access"
)

// rolePermissions is the single source of truth for the role/action matrix.
// Anything not listed here is denied; read-only access is page-level and not
// gated per role at the API layer.
var rolePermissions = map[Action][]Role{
	ActionCreateTransaction:       {RoleAdmin, RoleHR, RoleDataEntry},
	ActionApproveTransaction:      {RoleAdmin},
	ActionRejectTransaction:       {RoleAdmin},
	ActionEditApprovedTransaction: {RoleAdmin},
	ActionDeleteAnyTransaction:    {RoleAdmin},
	ActionCreateInvoice:           {RoleAdmin, RoleManager},
	ActionUpdateInvoice:           {RoleAdmin, RoleManager},
	ActionCreateClient:            {RoleAdmin, RoleManager},
	ActionManageCategories:        {RoleAdmin},
	ActionManageUsers:             {RoleAdmin},
	ActionAccessSettings:          {RoleAdmin},
}

// Permits reports whether role is allowed to perform action. Deny by default.
func Permits(role Role, action Action) bool {
	for _, allowed := range rolePermissions[action] {
		if role == allowed {
			return true
		}
	}
	return false
}

// CanDeleteTransaction applies the ownership rule for transaction deletion:
// admins may delete any transaction; other roles only their own, and only
// while the transaction is still a draft.
func CanDeleteTransaction(actor Actor, txn *Transaction) bool {
	if Permits(actor.Role, ActionDeleteAnyTransaction) {
		return true
	}
	return txn.CreatedBy == actor.UserID && txn.Status == StatusDraft
}

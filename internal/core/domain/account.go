package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// CostCategory places an account in the manufacturing cost sheet.
type CostCategory string

const (
	DirectMaterial  CostCategory = "DIRECT_MATERIAL"
	DirectLabor     CostCategory = "DIRECT_LABOR"
	DirectExpense   CostCategory = "DIRECT_EXPENSE"
	FactoryOverhead CostCategory = "FACTORY_OVERHEAD"
	AdminOverhead   CostCategory = "ADMIN_OVERHEAD"
	SellingOverhead CostCategory = "SELLING_OVERHEAD"
	NotApplicable   CostCategory = "NOT_APPLICABLE"
)

// CostCategories lists the cost sheet categories in waterfall order.
// NotApplicable is deliberately absent.
var CostCategories = []CostCategory{
	DirectMaterial,
	DirectLabor,
	DirectExpense,
	FactoryOverhead,
	AdminOverhead,
	SellingOverhead,
}

// AccountHead is one line of the chart of accounts.
// Heads are reference data: built once at startup and never mutated.
type AccountHead struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Type         AccountType  `json:"type"`
	CostCategory CostCategory `json:"costCategory"`
	IsDirect     bool         `json:"isDirect"` // Trading account (direct) vs P&L (indirect)
}
